// Package sound implements the opaque sound service spec §6 describes:
// playSound(id), stopSound(id), playMusic(name), fadeOut(), fadeIn(), over
// a fixed sound-ID enumeration. It is grounded on the ebiten-audio wiring
// in the example corpus (other_examples' TopScroller/escort-mission main
// loops, which decode .wav clips into one *audio.Player per sound and
// rewind+replay on each trigger) rather than on anything in the teacher
// repo, which has no audio subsystem at all.
package sound

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/shadowledge/ledgerun/internal/engineerr"
)

const sampleRate = 48000

const tickSeconds = float32(1.0) / 15.0

const fadeSeconds = float32(0.5)

// ID is one of the fixed sound-effect identifiers spec §6 names
// ("jump, land, shot, pain, death, pickup, etc.").
type ID string

const (
	Jump    ID = "jump"
	Land    ID = "land"
	Shot    ID = "shot"
	Pain    ID = "pain"
	Death   ID = "death"
	Pickup  ID = "pickup"
	Switch  ID = "switch"
	Door    ID = "door"
	Explode ID = "explode"
	Climb   ID = "climb"
)

// Clips resolves a sound or music name to its encoded clip bytes.
// internal/resources implements this over the OS filesystem; Service
// never reads a file itself.
type Clips interface {
	SoundBytes(id string) ([]byte, error)
	MusicBytes(name string) ([]byte, error)
}

// Service implements the spec §6 sound service on top of ebiten's audio
// context. Sound-effect players are created once per ID and reused via
// Rewind+Play, matching the example corpus's pattern for overlapping SFX
// triggers; music plays through a single looping player that Advance
// fades in/out over fadeSeconds using a gween.Tween, since ebiten's audio
// package has no built-in volume ramp.
type Service struct {
	ctx     *audio.Context
	clips   Clips
	players map[string]*audio.Player

	music      *audio.Player
	musicName  string
	volume     float64
	fadeTween  *gween.Tween
	fadeTarget float64
}

// NewService creates a sound service backed by clips. sampleRate is fixed
// at 48kHz, matching the example corpus's audio.NewContext calls.
func NewService(clips Clips) *Service {
	return &Service{
		ctx:     audio.NewContext(sampleRate),
		clips:   clips,
		players: make(map[string]*audio.Player),
		volume:  1,
	}
}

func (s *Service) soundPlayer(id string) (*audio.Player, error) {
	if p, ok := s.players[id]; ok {
		return p, nil
	}
	raw, err := s.clips.SoundBytes(id)
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithoutResampling(bytes.NewReader(raw))
	if err != nil {
		return nil, engineerr.New(engineerr.MalformedResource, "sound", "cannot decode sound clip "+id)
	}
	p, err := s.ctx.NewPlayer(stream)
	if err != nil {
		return nil, err
	}
	s.players[id] = p
	return p, nil
}

// PlaySound implements behavior.SoundService and the broader spec §6
// service. A missing or corrupt clip is silently ignored rather than
// propagated: spec §7 treats missing non-level assets as non-fatal.
func (s *Service) PlaySound(id string) {
	p, err := s.soundPlayer(id)
	if err != nil {
		return
	}
	_ = p.Rewind()
	p.Play()
}

// StopSound pauses a currently-playing sound-effect player, if one exists
// for id.
func (s *Service) StopSound(id string) {
	if p, ok := s.players[id]; ok {
		p.Pause()
	}
}

// PlayMusic starts looping name's music track, replacing any music
// currently playing. Calling PlayMusic with the already-playing name is a
// no-op.
func (s *Service) PlayMusic(name string) {
	if s.musicName == name && s.music != nil && s.music.IsPlaying() {
		return
	}
	raw, err := s.clips.MusicBytes(name)
	if err != nil {
		return
	}
	stream, err := wav.DecodeWithoutResampling(bytes.NewReader(raw))
	if err != nil {
		return
	}
	loop := audio.NewInfiniteLoop(stream, stream.Length())
	p, err := s.ctx.NewPlayer(loop)
	if err != nil {
		return
	}
	if s.music != nil {
		s.music.Close()
	}
	s.volume = 1
	p.SetVolume(s.volume)
	s.music = p
	s.musicName = name
	s.fadeTween = nil
	s.music.Play()
}

// FadeOut starts a fadeSeconds ramp of the current music's volume to
// silence. It does not stop the music outright; StopSound-equivalent
// behavior is Advance reaching volume 0 and the caller separately pausing
// playback once the fade completes, since spec §6 lists fadeOut and stop
// as distinct verbs.
func (s *Service) FadeOut() {
	if s.music == nil {
		return
	}
	s.fadeTween = gween.New(float32(s.volume), 0, fadeSeconds, ease.Linear)
	s.fadeTarget = 0
}

// FadeIn starts a fadeSeconds ramp of the current music's volume back to
// full.
func (s *Service) FadeIn() {
	if s.music == nil {
		return
	}
	s.fadeTween = gween.New(float32(s.volume), 1, fadeSeconds, ease.Linear)
	s.fadeTarget = 1
}

// Advance steps any in-progress music fade by one simulation tick.
// internal/world calls this once per tick; ebiten's audio mixing runs on
// its own goroutine and has no per-tick hook of its own.
func (s *Service) Advance() {
	if s.fadeTween == nil || s.music == nil {
		return
	}
	v, done := s.fadeTween.Update(tickSeconds)
	s.volume = float64(v)
	s.music.SetVolume(s.volume)
	if done {
		s.volume = s.fadeTarget
		s.music.SetVolume(s.volume)
		s.fadeTween = nil
	}
}
