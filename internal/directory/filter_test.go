package directory_test

import (
	"strings"
	"testing"

	"github.com/Makepad-fr/staff/internal/directory"
	"github.com/Makepad-fr/staff/internal/model"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func sample() []model.Employee {
	return []model.Employee{
		{ID: 1, Name: "Ana", Position: "Dev", AdmissionDate: "2020-01-15", Phone: "11987654321", Image: "x"},
		{ID: 2, Name: "Bruno Lima", Position: "Designer", Phone: "21912345678"},
		{ID: 3, Name: "Carla", Position: "Android Engineer"},
		{ID: 4, Name: "Diego", Position: "QA", Phone: "31955550000"},
	}
}

func TestFilter_EmptyQueryIsIdentity(t *testing.T) {
	t.Parallel()

	list := sample()
	for _, q := range []string{"", "   "} {
		if diff := cmp.Diff(list, directory.Filter(list, q)); diff != "" {
			t.Errorf("Filter(%q) mismatch (-want +got):\n%s", q, diff)
		}
	}
}

func TestFilter_SingleRecordFromFetch(t *testing.T) {
	t.Parallel()

	list := []model.Employee{sample()[0]}

	got := directory.Filter(list, "an")

	assert.Equal(t, list, got)
}

func TestFilter_MatchesNamePositionPhone(t *testing.T) {
	t.Parallel()

	ids := func(es []model.Employee) []int {
		out := make([]int, 0, len(es))
		for _, e := range es {
			out = append(out, e.ID)
		}
		return out
	}

	assert.Equal(t, []int{1, 3}, ids(directory.Filter(sample(), "AN")), "case-insensitive name/position")
	assert.Equal(t, []int{2}, ids(directory.Filter(sample(), "design")))
	assert.Equal(t, []int{2}, ids(directory.Filter(sample(), "9123")), "phone digits")
	assert.Equal(t, []int{4}, ids(directory.Filter(sample(), "qa")))
	assert.Empty(t, directory.Filter(sample(), "zzz"))
}

func TestFilter_ResultsAlwaysMatchQuery(t *testing.T) {
	t.Parallel()

	for _, q := range []string{"a", "An", "de", "1", "55", "lima", "ENG"} {
		lower := strings.ToLower(q)
		for _, e := range directory.Filter(sample(), q) {
			ok := strings.Contains(strings.ToLower(e.Name), lower) ||
				strings.Contains(strings.ToLower(e.Position), lower) ||
				strings.Contains(e.Phone, q)
			assert.True(t, ok, "record %d does not match %q", e.ID, q)
		}
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	t.Parallel()

	got := directory.Filter(sample(), "1")

	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].ID, got[i].ID)
	}
}
