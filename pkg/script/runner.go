package script

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spicery/fwdlist/pkg/fwdlist"
)

// ErrUnknownList is returned when a step names a list that was never
// declared.
var ErrUnknownList = errors.New("unknown list")

// Env holds the named lists a script operates on.
type Env struct {
	lists map[string]*fwdlist.List[string]
}

func NewEnv() *Env {
	return &Env{lists: make(map[string]*fwdlist.List[string])}
}

// Declare binds name to l, replacing any previous binding.
func (e *Env) Declare(name string, l *fwdlist.List[string]) {
	e.lists[name] = l
}

func (e *Env) Lookup(name string) (*fwdlist.List[string], error) {
	l, ok := e.lists[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownList, "%q", name)
	}
	return l, nil
}

// NamedList pairs a list with the name it was declared under.
type NamedList struct {
	Name string
	List *fwdlist.List[string]
}

// Lists returns every bound list, sorted by name.
func (e *Env) Lists() []NamedList {
	names := make([]string, 0, len(e.lists))
	for name := range e.lists {
		names = append(names, name)
	}
	sort.Strings(names)
	lists := make([]NamedList, 0, len(names))
	for _, name := range names {
		lists = append(lists, NamedList{Name: name, List: e.lists[name]})
	}
	return lists
}

type Step struct {
	Name        string
	List        string
	Op          Op
	ExpectEmpty bool
}

type Runner struct {
	Name  string
	Steps []Step
	env   *Env
	log   logrus.FieldLogger
}

// NewRunner creates a new Runner from the given ScriptConfig, compiling every
// step into an Op and constructing the declared lists. A nil logger means
// the logrus standard logger.
func NewRunner(scriptConfig *ScriptConfig, log logrus.FieldLogger) (*Runner, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	runner := &Runner{
		Name: scriptConfig.Name,
		env:  NewEnv(),
		log:  log.WithField("script", scriptConfig.Name),
	}
	for _, lc := range scriptConfig.Lists {
		if err := lc.Validate(); err != nil {
			return nil, err
		}
		if _, exists := runner.env.lists[lc.Name]; exists {
			return nil, errors.Errorf("list %q declared twice", lc.Name)
		}
		runner.env.Declare(lc.Name, newList(lc))
	}
	for i, sc := range scriptConfig.Steps {
		op, err := sc.ToOp()
		if err != nil {
			return nil, errors.Wrapf(err, "error in step %d %q", i, sc.Name)
		}
		runner.Steps = append(runner.Steps, Step{
			Name:        sc.Name,
			List:        sc.List,
			Op:          op,
			ExpectEmpty: sc.ExpectError == ExpectErrorEmpty,
		})
	}
	return runner, nil
}

func newList(lc ListConfig) *fwdlist.List[string] {
	if lc.Sized != nil {
		return fwdlist.NewSized[string](*lc.Sized)
	}
	return fwdlist.Of(lc.Values...)
}

// Run applies the steps in order and stops at the first failing one.
func (r *Runner) Run() error {
	for i, step := range r.Steps {
		entry := r.log.WithFields(logrus.Fields{"step": i, "name": step.Name, "list": step.List})
		err := step.Op.Apply(r.env, step.List)
		if step.ExpectEmpty {
			if err == nil {
				return errors.Errorf("step %d %q on list %q: expected an empty container error", i, step.Name, step.List)
			}
			if !fwdlist.IsEmptyContainer(err) {
				return errors.Wrapf(err, "step %d %q on list %q: expected an empty container error", i, step.Name, step.List)
			}
			entry.WithError(err).Debug("step failed as expected")
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "step %d %q on list %q", i, step.Name, step.List)
		}
		if l, lookupErr := r.env.Lookup(step.List); lookupErr == nil {
			entry = entry.WithField("size", l.Size())
		}
		entry.Debug("step applied")
	}
	r.log.WithField("steps", len(r.Steps)).Info("script finished")
	return nil
}

// Lists returns the script's lists sorted by name.
func (r *Runner) Lists() []NamedList {
	return r.env.Lists()
}

// List returns the list bound to name.
func (r *Runner) List(name string) (*fwdlist.List[string], bool) {
	l, ok := r.env.lists[name]
	return l, ok
}
