package spd_test

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spdmanifold/spd"
)

// ExampleManifold_Dim shows the structural queries of the manifold tag.
func ExampleManifold_Dim() {
	man, _ := spd.New(3)

	rows, cols := man.Size()
	fmt.Println(man.Dim(), rows, cols)
	// Output: 6 3 3
}

// ExampleManifold_CheckMatrix shows how validity failures are matched with
// errors.Is and inspected with errors.As.
func ExampleManifold_CheckMatrix() {
	man, _ := spd.New(2)

	// Symmetric but indefinite: one negative eigenvalue.
	bad := mat.NewSymDense(2, []float64{1, 0, 0, -2})
	err := man.CheckMatrix(bad)

	fmt.Println(errors.Is(err, spd.ErrNotPositiveDefinite))

	var def *spd.DefinitenessError
	if errors.As(err, &def) {
		fmt.Println(len(def.Eigenvalues))
	}
	// Output:
	// true
	// 2
}

// ExampleNewPoint shows constructor-time store switches: the inverse square
// root is skipped and stays missing until derived on demand.
func ExampleNewPoint() {
	p, _ := spd.NewPoint(mat.NewSymDense(2, []float64{4, 0, 0, 9}), spd.StoreSqrtInv(false))

	fmt.Println(p.HasSqrt(), p.HasSqrtInv())

	// Derived on demand from the eigendecomposition; still not cached.
	si := p.SqrtInv()
	fmt.Printf("%.2f %.2f\n", si.At(0, 0), si.At(1, 1))
	fmt.Println(p.HasSqrtInv())
	// Output:
	// true false
	// 0.50 0.33
	// false
}

// ExampleManifold_Project shows tangent projection by symmetrization.
func ExampleManifold_Project() {
	man, _ := spd.New(2)

	x := mat.NewDense(2, 2, []float64{0, 2, 4, 6})
	v, _ := man.Project(x)

	fmt.Println(v.At(0, 1), v.At(1, 0))
	// Output: 3 3
}
