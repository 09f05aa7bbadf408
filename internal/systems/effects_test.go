package systems

import (
	"testing"

	"github.com/shadowledge/ledgerun/internal/components"
)

func TestTriggerEffectsSpawnsEachKind(t *testing.T) {
	list := List{Effects: []Spec{
		{Kind: EffectOneShotSprite, SpriteID: "explosion"},
		{Kind: EffectParticleBurst, BurstColor: 0xff0000, BurstCount: 8},
		{Kind: EffectBurnSpawner},
		{Kind: EffectScoreFloater, ScoreAmount: 500},
		{Kind: EffectSound, SoundID: "boom"},
	}}

	var sprite, sound string
	var burstCount int
	var burnCalled bool
	var scoreAmount int

	fns := SpawnFns{
		SpawnSprite: func(spriteID string, x, y int, movement []MovementStep) { sprite = spriteID },
		SpawnBurst:  func(x, y int, color uint32, count int, bias float32) { burstCount = count },
		SpawnBurnFX: func(box BurnBox) { burnCalled = true },
		SpawnScore:  func(x, y, amount int) { scoreAmount = amount },
		PlaySound:   func(soundID string) { sound = soundID },
	}

	destroy := TriggerEffects(list, 1, 2, fns)

	if sprite != "explosion" || sound != "boom" || burstCount != 8 || !burnCalled || scoreAmount != 500 {
		t.Fatalf("expected all five effect kinds to fire, got sprite=%q sound=%q burst=%d burn=%v score=%d",
			sprite, sound, burstCount, burnCalled, scoreAmount)
	}
	if destroy {
		t.Fatalf("expected no destroy flag when no spec requests it")
	}
}

func TestTriggerEffectsHonorsDestroyOnTrigger(t *testing.T) {
	list := List{Effects: []Spec{{Kind: EffectSound, SoundID: "die", DestroyOnTrigger: true}}}
	destroy := TriggerEffects(list, 0, 0, SpawnFns{PlaySound: func(string) {}})
	if !destroy {
		t.Fatalf("expected DestroyOnTrigger to propagate to the return value")
	}
}

func TestEffectListFromDestructionEffectsExpandsSpriteAndSound(t *testing.T) {
	d := components.DestructionEffects{Effects: []components.EffectSpec{
		{SpriteID: "boom", SoundID: "bang"},
		{SpriteID: "debris"},
	}}
	list := EffectListFromDestructionEffects(d)
	if len(list.Effects) != 3 {
		t.Fatalf("expected 3 expanded effect specs (sprite+sound, sprite), got %d", len(list.Effects))
	}
}
