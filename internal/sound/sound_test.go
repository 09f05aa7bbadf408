package sound

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// buildWAV encodes samples as a minimal 16-bit mono PCM WAV file, matching
// what internal/resources would read off disk for a sound clip.
func buildWAV(samples []int16) []byte {
	dataSize := len(samples) * 2
	buf := new(bytes.Buffer)
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(buf, binary.LittleEndian, uint16(1)) // mono
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate*2))
	binary.Write(buf, binary.LittleEndian, uint16(2))
	binary.Write(buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(dataSize))
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}
	return buf.Bytes()
}

type fakeClips struct {
	sounds map[string][]byte
	music  map[string][]byte
}

func (f fakeClips) SoundBytes(id string) ([]byte, error) {
	if b, ok := f.sounds[id]; ok {
		return b, nil
	}
	return nil, errors.New("not found")
}

func (f fakeClips) MusicBytes(name string) ([]byte, error) {
	if b, ok := f.music[name]; ok {
		return b, nil
	}
	return nil, errors.New("not found")
}

func silentClip() []byte {
	samples := make([]int16, sampleRate/10)
	return buildWAV(samples)
}

func TestPlaySoundIgnoresMissingClipWithoutPanicking(t *testing.T) {
	svc := NewService(fakeClips{})
	svc.PlaySound(string(Jump))
}

func TestPlaySoundDecodesAndPlaysKnownClip(t *testing.T) {
	svc := NewService(fakeClips{sounds: map[string][]byte{string(Jump): silentClip()}})
	svc.PlaySound(string(Jump))
	if _, ok := svc.players[string(Jump)]; !ok {
		t.Fatalf("expected PlaySound to cache a player for the clip")
	}
}

func TestFadeOutAndAdvanceRampVolumeToZero(t *testing.T) {
	svc := NewService(fakeClips{music: map[string][]byte{"theme": silentClip()}})
	svc.PlayMusic("theme")
	if svc.volume != 1 {
		t.Fatalf("expected music to start at full volume, got %v", svc.volume)
	}
	svc.FadeOut()
	ticksFor := func(seconds float32) int { return int(seconds/tickSeconds) + 1 }
	for i := 0; i < ticksFor(fadeSeconds); i++ {
		svc.Advance()
	}
	if svc.volume != 0 {
		t.Fatalf("expected fade-out to reach zero volume, got %v", svc.volume)
	}
	if svc.fadeTween != nil {
		t.Fatalf("expected the fade tween to clear once complete")
	}
}

func TestFadeInWithoutMusicIsANoOp(t *testing.T) {
	svc := NewService(fakeClips{})
	svc.FadeIn()
	if svc.fadeTween != nil {
		t.Fatalf("expected FadeIn to no-op without an active music player")
	}
}
