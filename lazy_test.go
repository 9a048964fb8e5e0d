package godecode_test

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/reoring/godecode"
)

func TestLazy_LinkedListBuiltOnce(t *testing.T) {
	calls := 0
	var node godecode.Decoder[any, godecode.Object]
	node = godecode.Lazy("Node", func() godecode.Decoder[any, godecode.Object] {
		calls++
		return godecode.Type(
			godecode.Field("value", godecode.Number()),
			godecode.Field("next", godecode.Nullable(node)),
		)
	})

	list := obj("value", 1.0, "next", obj("value", 2.0, "next", obj("value", 3.0, "next", nil)))
	for range 3 {
		mustDecode(t, node, any(list))
	}
	if calls != 1 {
		t.Fatalf("thunk should run once, ran %d times", calls)
	}

	bad := obj("value", 1.0, "next", obj("value", "2", "next", nil))
	assertDraw(t, mustFail(t, node, any(bad)), strings.Join([]string{
		`lazy type Node`,
		`└─ required property "next"`,
		`   ├─ member 0`,
		`   │  └─ cannot decode {"value":"2","next":null}, should be null`,
		`   └─ lazy type Node`,
		`      └─ required property "value"`,
		`         └─ cannot decode "2", should be number`,
	}, "\n"))
}

func TestLazy_ConcurrentFirstUse(t *testing.T) {
	var calls atomic.Int32
	d := godecode.Lazy("N", func() godecode.Decoder[any, float64] {
		calls.Add(1)
		return godecode.Number()
	})
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Decode(1.0)
		}()
	}
	wg.Wait()
	if n := calls.Load(); n != 1 {
		t.Fatalf("thunk ran %d times", n)
	}
}
