package tui

import (
	"github.com/rs/zerolog"

	"github.com/opencode-ai/swatch/internal/colorset"
	"github.com/opencode-ai/swatch/internal/events"
	"github.com/opencode-ai/swatch/internal/logging"
	"github.com/opencode-ai/swatch/internal/models"
	"github.com/opencode-ai/swatch/internal/palette"
)

// session is the host side of the playground: the named set collection,
// one editor per set and the edit history. The bubbletea model holds it by
// pointer so copies of the model share it.
type session struct {
	store    *palette.Store
	editors  map[string]*colorset.Editor
	history  *events.History
	recorder *events.Recorder
	logger   zerolog.Logger
}

func newSession(defaultSet models.ColorSet) *session {
	history := events.NewHistory(events.DefaultHistorySize)
	s := &session{
		store:    palette.NewStore(defaultSet),
		editors:  make(map[string]*colorset.Editor),
		history:  history,
		recorder: events.NewRecorder(history),
		logger:   logging.Component("tui"),
	}
	s.store.OnCreate(s.onSetCreated)
	return s
}

func (s *session) onSetCreated(name string) {
	s.recorder.OnSetCreated(name)
	editor, err := s.store.Editor(name, s.recorder)
	if err != nil {
		s.logger.Error().Err(err).Str("set", name).Msg("failed to open editor")
		return
	}
	s.editors[name] = editor
}

func (s *session) names() []string {
	return s.store.Collection().Names()
}

func (s *session) editor(name string) *colorset.Editor {
	return s.editors[name]
}

// set returns the host's copy of the named set, which previews render from.
func (s *session) set(name string) (models.ColorSet, bool) {
	return s.store.Collection().Get(name)
}
