package spdist_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/spdist"
)

func ExampleMeanNearestDistance() {
	d, err := spdist.MeanNearestDistance(
		[]float64{0, 10}, []float64{0, 0},
		[]float64{1, 11}, []float64{0, 0},
	)
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output: 1
}

func ExampleMeanNearestDistance_sizeMismatch() {
	_, err := spdist.MeanNearestDistance(
		[]float64{0, 1}, []float64{0, 1},
		[]float64{0, 1, 5}, []float64{0, 1, 5},
	)
	fmt.Println(errors.Is(err, spdist.ErrVectorSizeMismatch))
	// Output: true
}

func ExampleEngine_MeanNearestDistance() {
	e := spdist.NewEngine(
		spdist.WithWorkers(4),
		spdist.WithSymmetricShapeCheck(),
	)

	d, err := e.MeanNearestDistance(context.Background(),
		[]float64{0, 1}, []float64{0, 1},
		[]float64{0, 1, 5}, []float64{0, 1, 5},
	)
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output: 0
}

func ExampleAdd() {
	sum, err := spdist.Add([]float64{1, 2, 3}, []float64{10, 20, 30})
	if err != nil {
		panic(err)
	}
	fmt.Println(sum)
	// Output: [11 22 33]
}
