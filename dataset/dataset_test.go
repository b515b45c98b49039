package dataset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/varlab/princomp/errs"
	"github.com/varlab/princomp/internal/hash"
	"github.com/varlab/princomp/matrix"
)

func TestNew(t *testing.T) {
	x, _ := matrix.FromRows([][]float64{
		{1, 0, 4},
		{0, 1, 2},
	})

	d, err := New("zoo", []string{"hair", "feathers", "legs"}, []string{"mammal", "bird"}, x)
	require.NoError(t, err)
	require.Equal(t, 2, d.Observations())
	require.Equal(t, 3, d.FeatureCount())
	require.Contains(t, d.String(), `"zoo"`)
}

func TestNewLabelsOptional(t *testing.T) {
	x, _ := matrix.FromRows([][]float64{{1, 2}})

	d, err := New("unlabeled", []string{"a", "b"}, nil, x)
	require.NoError(t, err)
	require.Empty(t, d.Labels)
}

func TestNewShapeValidation(t *testing.T) {
	x, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})

	_, err := New("bad", []string{"only-one"}, nil, x)
	require.ErrorIs(t, err, errs.ErrDimensionMismatch)

	_, err = New("bad", []string{"a", "b"}, []string{"just-one"}, x)
	require.ErrorIs(t, err, errs.ErrDimensionMismatch)
}

func TestFromRows(t *testing.T) {
	d, err := FromRows("zoo", []string{"hair", "legs"}, nil, [][]float64{
		{1, 4},
		{0, 2},
	})
	require.NoError(t, err)
	require.Equal(t, 1.0, d.X.At(0, 0))

	_, err = FromRows("ragged", []string{"a"}, nil, [][]float64{{1}, {2, 3}})
	require.ErrorIs(t, err, errs.ErrDimensionMismatch)
}

func TestFeatureIDs(t *testing.T) {
	d, err := FromRows("zoo", []string{"hair", "feathers"}, nil, [][]float64{{1, 0}})
	require.NoError(t, err)

	ids := d.FeatureIDs()
	require.Len(t, ids, 2)
	require.Equal(t, hash.FeatureID("hair"), ids[0])
	require.Equal(t, hash.FeatureID("feathers"), ids[1])
}

func TestClassName(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{1, "mammal"},
		{2, "bird"},
		{3, "reptile"},
		{4, "fish"},
		{5, "amphibian"},
		{6, "insect"},
		{7, "invertebrate"},
		{0, ClassUnknown},
		{8, ClassUnknown},
		{-1, ClassUnknown},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, ClassName(tt.code), "code %d", tt.code)
	}
}

func TestClassLabels(t *testing.T) {
	labels := ClassLabels([]int{1, 4, 9})
	require.Equal(t, []string{"mammal", "fish", ClassUnknown}, labels)
}
