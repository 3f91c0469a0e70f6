package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	Name   string
	Expiry *time.Time
}

func expiryOf(f fixture) *time.Time { return f.Expiry }

func TestAnnotateDoesNotMutateInput(t *testing.T) {
	in := []fixture{
		{Name: "a", Expiry: datePtr(noon.AddDate(0, 0, 10))},
		{Name: "b"},
	}
	annotated := Annotate(in, expiryOf, Warranty, noon)

	annotated[0].Entity.Name = "changed"
	require.Equal(t, "a", in[0].Name)

	require.Equal(t, TagExpiringSoon, annotated[0].Tag)
	require.NotNil(t, annotated[0].DaysRemaining)
	require.Equal(t, 10, *annotated[0].DaysRemaining)
	require.Equal(t, TagUnknown, annotated[1].Tag)
	require.Nil(t, annotated[1].DaysRemaining)
}

func TestSortByDaysRemainingNilLast(t *testing.T) {
	in := []fixture{
		{Name: "unknown-first"},
		{Name: "far", Expiry: datePtr(noon.AddDate(0, 0, 200))},
		{Name: "expired", Expiry: datePtr(noon.AddDate(0, 0, -5))},
		{Name: "unknown-second"},
		{Name: "soon", Expiry: datePtr(noon.AddDate(0, 0, 10))},
	}
	annotated := Annotate(in, expiryOf, Warranty, noon)
	SortByDaysRemaining(annotated)

	names := make([]string, 0, len(annotated))
	for _, a := range annotated {
		names = append(names, a.Entity.Name)
	}
	require.Equal(t, []string{"expired", "soon", "far", "unknown-first", "unknown-second"}, names)
}

func TestAnnotateEmpty(t *testing.T) {
	annotated := Annotate(nil, expiryOf, Maintenance, noon)
	require.Empty(t, annotated)
	require.NotNil(t, annotated)
}
