package strategy

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownStrategy is returned by Registry.Get for names that were
// never registered.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Registry holds named strategies in registration order. Register
// everything at startup; lookups may then happen concurrently.
type Registry struct {
	names  []string
	byName map[string]Strategy
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Strategy)}
}

func (r *Registry) Register(st Strategy) error {
	if st.Name == "" {
		return errors.New("strategy needs a name")
	}
	if _, ok := r.byName[st.Name]; ok {
		return fmt.Errorf("strategy %q registered twice", st.Name)
	}
	r.byName[st.Name] = st
	r.names = append(r.names, st.Name)
	return nil
}

func (r *Registry) Get(name string) (Strategy, error) {
	st, ok := r.byName[name]
	if !ok {
		return Strategy{}, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
	}
	return st, nil
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

func mustStrategy(st Strategy, err error) Strategy {
	if err != nil {
		panic(err)
	}
	return st
}

func fptr(v float64) *float64 {
	return &v
}

// Default returns the standard lineup: the two scorers bare, plus the
// opening books that have done well in batch runs, with and without
// abort thresholds.
func Default() *Registry {
	r := NewRegistry()
	for _, st := range []Strategy{
		mustStrategy(New("maxinfo", MaxInfo{}, nil, nil)),
		mustStrategy(New("random", Random{}, nil, nil)),
		mustStrategy(New("maxinfo-adieu", MaxInfo{}, []string{"adieu"}, nil)),
		mustStrategy(New("maxinfo-soare-clint", MaxInfo{}, []string{"soare", "clint"}, nil)),
		mustStrategy(New("maxinfo-soare-clint-abort60", MaxInfo{}, []string{"soare", "clint"}, fptr(0.6))),
		mustStrategy(New("maxinfo-arise-mound", MaxInfo{}, []string{"arise", "mound"}, nil)),
		mustStrategy(New("maxinfo-arise-mound-abort80", MaxInfo{}, []string{"arise", "mound"}, fptr(0.8))),
	} {
		if err := r.Register(st); err != nil {
			panic(err)
		}
	}
	return r
}

// ParseSpec builds a one-off strategy from a compact spec string of the
// form "scorer[+open=w1,w2,...][+abort=0.6]", e.g.
// "maxinfo+open=soare,clint+abort=0.6". The spec string becomes the
// strategy's name.
func ParseSpec(spec string) (Strategy, error) {
	parts := strings.Split(spec, "+")
	var sc Scorer
	switch parts[0] {
	case "maxinfo":
		sc = MaxInfo{}
	case "random":
		sc = Random{}
	default:
		return Strategy{}, fmt.Errorf("%q: unknown scorer %q", spec, parts[0])
	}
	var openings []string
	var abort *float64
	for _, part := range parts[1:] {
		key, val, ok := strings.Cut(part, "=")
		if !ok {
			return Strategy{}, fmt.Errorf("%q: bad option %q", spec, part)
		}
		switch key {
		case "open":
			openings = strings.Split(val, ",")
		case "abort":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return Strategy{}, fmt.Errorf("%q: bad abort value %q", spec, val)
			}
			abort = &f
		default:
			return Strategy{}, fmt.Errorf("%q: unknown option %q", spec, key)
		}
	}
	return New(spec, sc, openings, abort)
}
