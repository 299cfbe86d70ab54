package strata_test

import (
	"fmt"

	"github.com/aretw0/strata"
	"github.com/aretw0/strata/pkg/domain"
)

// ExampleNew walks the canonical A -> B -> C scenario through the facets.
func ExampleNew() {
	f := strata.New()

	n, _ := f.Make.N(domain.KindA)
	a, _ := domain.Narrow(domain.VariantA, n)
	b := domain.NewB().Update(a)
	c := domain.NewC().Update(b).SetC1(10)

	va, _ := f.Get.V(a)
	vb, _ := f.Get.V(b)
	vc, _ := f.Get.V(c)
	c2, _ := f.Get.C2(c)

	fmt.Println(va, vb, vc, c2.Len())
	fmt.Println(f.Is.B(a), f.Is.B(b), f.Is.C(c), f.Is.A(domain.KindA))
	// Output:
	// 0 567 10 1
	// false true true true
}

// ExampleBuild stops the chain early and calls a facet by name.
func ExampleBuild() {
	stage, err := strata.Build("get")
	if err != nil {
		panic(err)
	}

	v, _ := stage.View().Call("get", "v", domain.NewB())
	_, hasMake := stage.View().Namespace("make")
	fmt.Println(v, hasMake)
	// Output:
	// 567 false
}
