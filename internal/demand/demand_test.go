package demand

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	req1 = Demand{"a": Of("1", "2"), "b": Of("1")}
	req2 = Demand{"b": Of("2")}
	req3 = Demand{"b": Of("3"), "c": Of("1", "2")}
)

func TestOf(t *testing.T) {
	assert.Equal(t, Options{"1", "2"}, Of("2", "1", "2"))
	assert.Nil(t, Of())
	assert.Nil(t, Of(""))
	assert.True(t, Of().Unconstrained())
	assert.True(t, Of("x").Contains("x"))
	assert.False(t, Of("x").Contains("y"))
}

func TestOptions_Union(t *testing.T) {
	assert.Nil(t, Any().Union(Any()))
	assert.Equal(t, Options{"1"}, Any().Union(Of("1")))
	assert.Equal(t, Options{"1"}, Of("1").Union(Any()))
	assert.Equal(t, Options{"1", "2", "3"}, Of("1", "3").Union(Of("2", "3")))
}

func TestCombine(t *testing.T) {
	testCases := []struct {
		name     string
		input    []Demand
		expected Demand
	}{
		{name: "empty input", input: nil, expected: Demand{}},
		{name: "single mapping", input: []Demand{req1}, expected: req1},
		{name: "overlapping names", input: []Demand{req1, req2}, expected: Demand{"a": Of("1", "2"), "b": Of("1", "2")}},
		{name: "disjoint names", input: []Demand{req2, req3}, expected: Demand{"b": Of("2", "3"), "c": Of("1", "2")}},
		{name: "three mappings", input: []Demand{req1, req2, req3}, expected: Demand{"a": Of("1", "2"), "b": Of("1", "2", "3"), "c": Of("1", "2")}},
		{name: "unconstrained only", input: []Demand{{"x": Any()}, {"x": Any()}}, expected: Demand{"x": Any()}},
		{name: "concrete absorbs unconstrained", input: []Demand{{"x": Any()}, {"x": Of("1")}}, expected: Demand{"x": Of("1")}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Combine(tc.input...)
			require.NotNil(t, got)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("Combine() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCombine_OrderIndependent(t *testing.T) {
	abc := Combine(req1, req2, req3)
	assert.True(t, abc.Equal(Combine(req3, req1, req2)))
	assert.True(t, abc.Equal(Combine(req2, req3, req1)))
	assert.True(t, abc.Equal(Combine(Combine(req1, req2), req3)))
	assert.True(t, abc.Equal(Combine(req1, Combine(req2, req3))))
}

func TestCombine_DoesNotAliasInputs(t *testing.T) {
	in := Demand{"a": Of("1")}
	out := Combine(in)
	out.Merge(Demand{"a": Of("2")})

	assert.Equal(t, Options{"1"}, in["a"])
	assert.Equal(t, Options{"1", "2"}, out["a"])
}

func TestDemand_Merge(t *testing.T) {
	d := Demand{"volume_counts": Of("car")}
	d.Merge(Demand{"volume_counts": Of("bus")}, Demand{"vkt": Any()})

	assert.Equal(t, Demand{"volume_counts": Of("bus", "car"), "vkt": nil}, d)
}

func TestDemand_Equal(t *testing.T) {
	assert.True(t, Demand(nil).Equal(Demand{}))
	assert.True(t, req1.Equal(req1.Clone()))
	assert.False(t, req1.Equal(req2))
	assert.False(t, Demand{"x": Any()}.Equal(Demand{"x": Of("1")}))
}

func TestDemand_String(t *testing.T) {
	assert.Equal(t, "{}", Demand{}.String())
	assert.Equal(t, "{a:[1 2] b:*}", Demand{"b": Any(), "a": Of("2", "1")}.String())
}

func TestFlatten(t *testing.T) {
	assert.Equal(t, []string{"r:o"}, Flatten(Demand{"r": Of("o")}))
	assert.Equal(t, []string{"r"}, Flatten(Demand{"r": Any()}))
	assert.Empty(t, Flatten(Demand{}))
	assert.Empty(t, Flatten(nil))
	assert.Equal(t, []string{"a:1", "a:2", "b"}, Flatten(Demand{"a": Of("1", "2"), "b": Any()}))
}

func TestKey_RoundTrip(t *testing.T) {
	testCases := []struct {
		name, option, key string
	}{
		{"network", "", "network"},
		{"vkt", "bus", "vkt:bus"},
		{"a", "x:y", "a:x:y"},
	}

	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			assert.Equal(t, tc.key, Key(tc.name, tc.option))
			name, option := SplitKey(tc.key)
			assert.Equal(t, tc.name, name)
			assert.Equal(t, tc.option, option)
		})
	}
}

func TestKeySet(t *testing.T) {
	s := NewKeySet("b", "a")
	s.Add("a", "c")

	assert.True(t, s.Has("c"))
	assert.False(t, s.Has("d"))
	assert.Equal(t, []string{"a", "b", "c"}, s.Sorted())
}
