package query

import (
	"net/netip"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/livp123/logscope/internal/entry"
	"github.com/livp123/logscope/internal/utils/iputil"
	lserrors "github.com/livp123/logscope/pkg/errors"
)

// Env is the environment a filter expression is evaluated against.
// Env 是过滤表达式求值时使用的环境。
type Env struct {
	IP      string
	User    string
	Event   string
	Status  string
	Task    int
	HasTask bool
	Date    time.Time
	HasDate bool

	addr netip.Addr
}

var envPool = sync.Pool{
	New: func() interface{} {
		return &Env{}
	},
}

const maxCachedPatterns = 1000

var (
	likeCache sync.Map
	likeCount int64
)

// Reset clears the environment for reuse.
// Reset 重置环境以便复用。
func (e *Env) Reset() {
	*e = Env{}
}

func (e *Env) load(en entry.Entry) {
	e.IP = en.Origin()
	e.User = en.Actor()
	e.Event = string(en.Event())
	e.Status = string(en.Outcome())
	e.Task, e.HasTask = en.Task()
	e.Date, e.HasDate = en.Timestamp().Time()
	// Origins that are not IP literals leave addr invalid; InCIDR is then false.
	e.addr, _ = iputil.ParseAddr(e.IP)
}

// InCIDR reports whether the entry origin lies inside cidr. A bare address
// matches only itself.
// Usage: InCIDR("10.0.0.0/8")
func (e *Env) InCIDR(cidr string) bool {
	prefix, err := iputil.ParsePrefix(cidr)
	if err != nil || !e.addr.IsValid() {
		return false
	}
	return prefix.Contains(e.addr)
}

// Like matches s against a pattern where '*' stands for any run of characters.
// Without a '*' the pattern must equal s.
// Like 使用 '*' 通配符匹配字符串。
func (e *Env) Like(s, pattern string) bool {
	if !strings.Contains(pattern, "*") {
		return s == pattern
	}
	if v, ok := likeCache.Load(pattern); ok {
		return v.(*regexp.Regexp).MatchString(s)
	}

	quoted := regexp.QuoteMeta(pattern)
	re, err := regexp.Compile("^" + strings.ReplaceAll(quoted, `\*`, ".*") + "$")
	if err != nil {
		return false
	}
	if atomic.LoadInt64(&likeCount) < maxCachedPatterns {
		likeCache.Store(pattern, re)
		atomic.AddInt64(&likeCount, 1)
	}
	return re.MatchString(s)
}

// Contains reports whether sub occurs in s.
func (e *Env) Contains(s, sub string) bool {
	return strings.Contains(s, sub)
}

// Filter is a compiled boolean expression over entries.
type Filter struct {
	src     string
	program *vm.Program
}

// CompileFilter compiles src. The expression must yield a bool.
// CompileFilter 编译过滤表达式，表达式结果必须为 bool。
func CompileFilter(src string) (*Filter, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		src = "true"
	}
	program, err := expr.Compile(src, expr.Env(&Env{}), expr.AsBool())
	if err != nil {
		return nil, lserrors.NewFilterError(src, err)
	}
	return &Filter{src: src, program: program}, nil
}

func (f *Filter) String() string { return f.src }

// Match evaluates the filter against one entry.
func (f *Filter) Match(en entry.Entry) (bool, error) {
	env := envPool.Get().(*Env)
	defer func() {
		env.Reset()
		envPool.Put(env)
	}()
	env.load(en)

	out, err := expr.Run(f.program, env)
	if err != nil {
		return false, lserrors.NewFilterError(f.src, err)
	}
	matched, _ := out.(bool)
	return matched, nil
}

// Select returns the entries in rng accepted by f, in insertion order. A nil
// filter accepts everything.
func (e *Engine) Select(f *Filter, rng TimeRange) ([]entry.Entry, error) {
	var out []entry.Entry
	for _, en := range e.store.All() {
		if !rng.Contains(en.Timestamp()) {
			continue
		}
		if f != nil {
			ok, err := f.Match(en)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		out = append(out, en)
	}
	return out, nil
}
