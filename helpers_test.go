package lightup

import (
	"reflect"
	"testing"

	"github.com/ygrebnov/lightup/host"
)

const testPkg = "github.com/ygrebnov/lightup"

type testNode interface{ Kind() string }

type testToken struct{ Text string }

// testRef exposes its members through methods.
type testRef struct {
	keyword testToken
	inner   testNode
}

func (r *testRef) Kind() string       { return "ref" }
func (r *testRef) Keyword() testToken { return r.keyword }
func (r *testRef) Inner() testNode    { return r.inner }

func (r *testRef) WithKeyword(k testToken) *testRef {
	c := *r
	c.keyword = k
	return &c
}

func (r *testRef) WithInner(n testNode) *testRef {
	c := *r
	c.inner = n
	return &c
}

type testLit struct{ Value string }

func (l *testLit) Kind() string { return "lit" }

// testPair exposes its members as fields only.
type testPair struct {
	Left  testNode
	Op    testToken
	Right testNode
}

func (p *testPair) Kind() string { return "pair" }

var (
	refType  = reflect.TypeOf((*testRef)(nil))
	litType  = reflect.TypeOf((*testLit)(nil))
	pairType = reflect.TypeOf((*testPair)(nil))
)

func newTestAssembly(t testing.TB, version string, types ...reflect.Type) *host.Assembly {
	t.Helper()
	a, err := host.NewAssembly(testPkg, version, types...)
	if err != nil {
		t.Fatalf("NewAssembly: %v", err)
	}
	return a
}

// switchable is a host source tests can repoint.
type switchable struct {
	cur *host.Assembly
}

func (s *switchable) source() *host.Assembly { return s.cur }

func recoverError(t *testing.T, f func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic")
		}
		e, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v is not an error", r)
		}
		err = e
	}()
	f()
	return nil
}
