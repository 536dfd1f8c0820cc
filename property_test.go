/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package pathtemplates

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

func TestLiteralRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		name := rapid.StringMatching(`[A-Za-z][A-Za-z0-9_]{0,15}`).Draw(rt, "name")
		literal := rapid.StringMatching(`[A-Za-z0-9_./ -]{0,40}`).Draw(rt, "literal")

		files := New()
		if err := files.Add(name, literal); err != nil {
			rt.Fatalf("add failed: %v", err)
		}

		p, err := files.Get(name)
		if err != nil {
			rt.Fatalf("get failed: %v", err)
		}
		if p.String() != literal {
			rt.Fatalf("literal %q resolved to %q", literal, p.String())
		}
	})
}

func TestResolveIdempotenceProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		base := rapid.StringMatching(`/[a-z0-9/]{0,20}`).Draw(rt, "base")
		subject := rapid.IntRange(0, 999).Draw(rt, "subject")
		width := rapid.IntRange(1, 6).Draw(rt, "width")

		files := New()
		if err := files.Add("base", base); err != nil {
			rt.Fatalf("add failed: %v", err)
		}
		tpl := fmt.Sprintf("{base}/sub{subject:0%dd}", width)
		if err := files.Add("epochs", tpl); err != nil {
			rt.Fatalf("add failed: %v", err)
		}

		args := Args{"subject": subject}
		first, err := files.Resolve("epochs", args)
		if err != nil {
			rt.Fatalf("first resolve failed: %v", err)
		}
		second, err := files.Resolve("epochs", args)
		if err != nil {
			rt.Fatalf("second resolve failed: %v", err)
		}
		if first != second {
			rt.Fatalf("resolution is not idempotent: %v vs %v", first, second)
		}

		want := fmt.Sprintf("%s/sub%0*d", base, width, subject)
		if first.String() != want {
			rt.Fatalf("expected %q, got %q", want, first.String())
		}
	})
}

func TestAddFromMapEquivalenceProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		entries := rapid.MapOfN(
			rapid.StringMatching(`[a-z][a-z0-9_]{0,8}`),
			rapid.StringMatching(`/[a-z0-9/]{0,20}`),
			0, 8,
		).Draw(rt, "entries")

		bulk := New()
		m := make(map[string]any, len(entries))
		for name, path := range entries {
			m[name] = path
		}
		if err := bulk.AddFromMap(m); err != nil {
			rt.Fatalf("bulk add failed: %v", err)
		}

		sequential := New()
		for name, path := range entries {
			if err := sequential.Add(name, path); err != nil {
				rt.Fatalf("sequential add failed: %v", err)
			}
		}

		for name := range entries {
			bp, err := bulk.Get(name)
			if err != nil {
				rt.Fatalf("bulk get failed: %v", err)
			}
			sp, err := sequential.Get(name)
			if err != nil {
				rt.Fatalf("sequential get failed: %v", err)
			}
			if bp != sp {
				rt.Fatalf("alias %q differs: %v vs %v", name, bp, sp)
			}
		}
	})
}
