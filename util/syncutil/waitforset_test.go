package syncutil

import (
	"testing"
	"time"
)

func TestWaitForSet1(t *testing.T) {
	w := NewWaitForSet()
	w.Start(500 * time.Millisecond)
	go func() {
		if err := w.Set(42); err != nil {
			t.Log(err)
		}
	}()
	v, err := w.WaitForSet()
	if err != nil {
		t.Fatal(err)
	}
	if v.(int) != 42 {
		t.Fatal(v)
	}
}

func TestWaitForSetTimeout(t *testing.T) {
	w := NewWaitForSet()
	w.Start(20 * time.Millisecond)
	_, err := w.WaitForSet()
	if err == nil {
		t.Fatal("expecting timeout")
	}
}

func TestWaitForSetReuse(t *testing.T) {
	w := NewWaitForSet()
	for i := 0; i < 5; i++ {
		w.Start(500 * time.Millisecond)
		go func() {
			if err := w.Set(i); err != nil {
				t.Log(err)
			}
		}()
		v, err := w.WaitForSet()
		if err != nil {
			t.Fatal(err)
		}
		if v.(int) != i {
			t.Fatal(v)
		}
	}
}

//----------

func BenchmarkWaitForSet(b *testing.B) {
	for i := 0; i < b.N; i++ {
		waitForSet1(b)
	}
}
func waitForSet1(b *testing.B) {
	for i := 0; i < 1000; i++ {
		u := NewWaitForSet()
		u.Start(50 * time.Millisecond)
		go func() {
			if err := u.Set(i); err != nil {
				b.Log(err)
			}
		}()
		_, err := u.WaitForSet()
		if err != nil {
			b.Log(err)
		}
	}
}
