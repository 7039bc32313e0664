package property

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestTable(t *testing.T) {
	for name, s := range shorthands {
		t.Run(name, func(t *testing.T) {
			test.T(t, len(s.Initial), len(s.Longhands))
			test.That(t, 0 < s.Assigned && s.Assigned <= len(s.Longhands), "assigned longhands")
			seen := map[string]bool{}
			for _, longhand := range s.Longhands {
				test.That(t, !seen[longhand], "duplicate longhand", longhand)
				seen[longhand] = true
			}
		})
	}
}

func TestLookup(t *testing.T) {
	s := Lookup("border")
	test.That(t, s != nil)
	test.T(t, s.Kind, Border)
	test.T(t, len(s.Longhands), 17)
	test.T(t, s.Assigned, 12)
	test.T(t, s.Index("border-top-color"), 8)
	test.String(t, s.Initial[s.Index("border-image-slice")].String(), "100%")

	test.That(t, Lookup("border-top-width") == nil)
	test.That(t, IsShorthand("grid-area"))
	test.String(t, Lookup("background").Initial[1].String(), "0% 0%")
	test.T(t, Lookup("font").Initial[6].IsZero(), true)
}

func TestOwners(t *testing.T) {
	var names []string
	for _, s := range Owners("border-top-width") {
		names = append(names, s.Name)
	}
	test.T(t, names, []string{"border-width", "border-top", "border"})
	test.T(t, len(Owners("grid-row-start")), 2)
	test.T(t, len(Owners("color")), 0)
}

func TestNormalize(t *testing.T) {
	test.String(t, Normalize(" Margin-Top "), "margin-top")
	test.String(t, Normalize("--Brand"), "--Brand")
	test.That(t, IsCustom("--x"))
}
