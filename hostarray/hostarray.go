package hostarray

import (
	"context"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/spdist"
)

// Slice returns the elements of v as a []float64.
//
// Contiguous *mat.VecDense data is returned without copying and must not be
// modified by the caller. A nil vector, including a nil *mat.VecDense
// such as Vector returns for empty input, yields nil.
func Slice(v mat.Vector) []float64 {
	if v == nil {
		return nil
	}

	if vd, ok := v.(*mat.VecDense); ok {
		if vd == nil {
			return nil
		}
		raw := vd.RawVector()
		if raw.Inc == 1 {
			return raw.Data[:raw.N]
		}
	}

	n := v.Len()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = v.AtVec(i)
	}
	return out
}

// Vector wraps s in a *mat.VecDense without copying. An empty s yields nil
// because gonum does not allow zero-length vectors.
func Vector(s []float64) *mat.VecDense {
	if len(s) == 0 {
		return nil
	}
	return mat.NewVecDense(len(s), s)
}

func engineOrDefault(e *spdist.Engine) *spdist.Engine {
	if e == nil {
		return defaultEngine
	}
	return e
}

var defaultEngine = spdist.NewEngine()

// MeanNearestDistance runs e.MeanNearestDistance on gonum vectors.
// A nil engine uses a sequential default; nil vectors are empty sequences.
func MeanNearestDistance(e *spdist.Engine, x, y, xRef, yRef mat.Vector) (float64, error) {
	return MeanNearestDistanceContext(context.Background(), e, x, y, xRef, yRef)
}

// MeanNearestDistanceContext is MeanNearestDistance with a context.
func MeanNearestDistanceContext(ctx context.Context, e *spdist.Engine, x, y, xRef, yRef mat.Vector) (float64, error) {
	return engineOrDefault(e).MeanNearestDistance(ctx, Slice(x), Slice(y), Slice(xRef), Slice(yRef))
}

// Add returns a + b as a new vector. Vectors of different length return
// spdist.ErrVectorSizeMismatch.
func Add(e *spdist.Engine, a, b mat.Vector) (*mat.VecDense, error) {
	return AddContext(context.Background(), e, a, b)
}

// AddContext is Add with a context.
func AddContext(ctx context.Context, e *spdist.Engine, a, b mat.Vector) (*mat.VecDense, error) {
	out, err := engineOrDefault(e).Add(ctx, Slice(a), Slice(b))
	if err != nil {
		return nil, err
	}
	return Vector(out), nil
}
