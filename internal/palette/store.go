package palette

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/swatch/internal/colorset"
	"github.com/opencode-ai/swatch/internal/logging"
	"github.com/opencode-ai/swatch/internal/models"
)

// Store is the host's mutable handle on a Collection. It folds editor change
// notifications into the named sets. A Store is owned by one goroutine.
type Store struct {
	collection Collection
	defaultSet models.ColorSet
	onCreate   func(name string)
	logger     zerolog.Logger
}

// NewStore creates an empty store whose new sets start from defaultSet.
func NewStore(defaultSet models.ColorSet) *Store {
	return &Store{
		defaultSet: defaultSet,
		logger:     logging.Component("palette"),
	}
}

// OnCreate registers a callback invoked after a set is added.
func (s *Store) OnCreate(fn func(name string)) {
	s.onCreate = fn
}

// Collection returns the current snapshot.
func (s *Store) Collection() Collection {
	return s.collection
}

// AddSet creates name from the default set.
func (s *Store) AddSet(name string) error {
	return s.AddSetFrom(name, s.defaultSet)
}

// AddSetFrom creates name from set.
func (s *Store) AddSetFrom(name string, set models.ColorSet) error {
	if err := s.collection.checkName(name); err != nil {
		return err
	}
	if err := set.Validate(); err != nil {
		return fmt.Errorf("add set %q: %w", name, err)
	}
	s.collection = Reduce(s.collection, NewSet{Name: name, Set: set})
	s.logger.Info().Str("set", name).Msg("color set created")
	if s.onCreate != nil {
		s.onCreate(name)
	}
	return nil
}

// OnColorChange implements colorset.Notifier.
func (s *Store) OnColorChange(change colorset.Change) {
	if _, ok := s.collection.Get(change.Name); !ok {
		s.logger.Warn().Str("set", change.Name).Msg("change for unknown color set ignored")
		return
	}
	s.collection = Reduce(s.collection, EditSet{Name: change.Name, Slot: change.Slot, Value: change.Value})
}

// Editor opens an editing session over the named set that reports back to
// this store and to any extra notifiers.
func (s *Store) Editor(name string, extra ...colorset.Notifier) (*colorset.Editor, error) {
	set, ok := s.collection.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSetNotFound, name)
	}
	var notifier colorset.Notifier = s
	if len(extra) > 0 {
		notifier = Fanout(append([]colorset.Notifier{s}, extra...)...)
	}
	return colorset.NewEditor(name, set, notifier), nil
}

// Fanout delivers each change to every notifier in order.
func Fanout(notifiers ...colorset.Notifier) colorset.Notifier {
	return colorset.NotifierFunc(func(change colorset.Change) {
		for _, n := range notifiers {
			if n != nil {
				n.OnColorChange(change)
			}
		}
	})
}
