package typereg_test

import (
	"fmt"
	"math"

	"github.com/zjrosen/typereg"
	"gopkg.in/yaml.v3"
)

// Shape is the base interface the examples bind their registries to.
type Shape interface {
	Area() float64
}

type Circle struct {
	Radius float64 `yaml:"radius"`
}

func (c Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

type Square struct {
	Side float64 `yaml:"side"`
}

func (s Square) Area() float64 { return s.Side * s.Side }

type Car interface {
	Wheels() int
}

type SUV struct{}

func (SUV) Wheels() int { return 4 }

type Sedan struct{}

func (Sedan) Wheels() int { return 4 }

type Coupe struct{}

func (Coupe) Wheels() int { return 4 }

type ToyCar struct{}

func (ToyCar) Wheels() int { return 4 }

func Example() {
	shapes := typereg.New("shape")
	typereg.MustBind[Shape](shapes)

	shapes.MustRegister(Circle{})
	shapes.MustRegister(Square{})

	t, _ := shapes.Lookup("Circle")
	fmt.Println(t)
	fmt.Println(shapes.Contains("Triangle"))
	fmt.Println(shapes.Count())

	// Output:
	// typereg_test.Circle
	// false
	// 2
}

func ExampleMake() {
	shapes := typereg.New("shape")
	typereg.MustBind[Shape](shapes)
	shapes.MustRegister(Circle{})
	shapes.MustRegister(Square{})

	s, err := typereg.Make[Shape](shapes, "Square")
	if err != nil {
		panic(err)
	}
	s.(*Square).Side = 3
	fmt.Println(s.Area())

	// Output:
	// 9
}

func ExampleRegistry_New() {
	shapes := typereg.New("shape")
	typereg.MustBind[Shape](shapes)
	shapes.MustRegister(Circle{})

	v, err := shapes.New("Circle")
	if err != nil {
		panic(err)
	}
	c := v.(*Circle)
	c.Radius = 1
	fmt.Printf("%T area %.2f\n", v, c.Area())

	// Output:
	// *typereg_test.Circle area 3.14
}

// Example_configDriven picks and populates a concrete type from a single
// YAML document: the first pass reads the type name, the second decodes
// the remaining fields into the instance made from it.
func Example_configDriven() {
	shapes := typereg.New("shape")
	typereg.MustBind[Shape](shapes)
	shapes.MustRegister(Circle{})
	shapes.MustRegister(Square{})

	config := []byte("shape: Circle\nradius: 2\n")

	var header struct {
		Shape string `yaml:"shape"`
	}
	if err := yaml.Unmarshal(config, &header); err != nil {
		panic(err)
	}

	s, err := typereg.Make[Shape](shapes, header.Shape)
	if err != nil {
		panic(err)
	}
	if err := yaml.Unmarshal(config, s); err != nil {
		panic(err)
	}

	fmt.Printf("%.2f\n", s.Area())

	// Output:
	// 12.57
}

func ExampleRegistry_SkipName() {
	cars := typereg.New("car")
	typereg.MustBind[Car](cars)

	cars.SkipName("ToyCar")
	cars.MustRegister(SUV{})
	cars.MustRegister(Sedan{})
	cars.MustRegister(ToyCar{}) // silently ignored

	fmt.Println(cars.Names())

	// Output:
	// [SUV Sedan]
}

func ExampleRegistry_Names() {
	cars := typereg.New("car")
	typereg.MustBind[Car](cars)
	cars.MustRegister(SUV{})
	cars.MustRegister(Sedan{})
	cars.MustRegister(Coupe{})

	if err := cars.Delete("Sedan"); err != nil {
		panic(err)
	}
	if err := cars.Set("Sedan", Sedan{}); err != nil {
		panic(err)
	}

	fmt.Println(cars.Names())

	// Output:
	// [SUV Coupe Sedan]
}

func ExampleRegistry_Lookup() {
	cars := typereg.New("car")
	typereg.MustBind[Car](cars)
	cars.MustRegister(SUV{})
	cars.MustRegister(Sedan{})

	_, err := cars.Lookup("sedan")
	fmt.Println(err)

	// Output:
	// "sedan" is not a registered car: name not registered
	// available cars (in decreasing similarity):
	//   * Sedan
	//   * SUV
}

// Example_independentRegistries registers the same type in two registries;
// each keeps its own mapping.
func Example_independentRegistries() {
	rentals := typereg.New("rental")
	typereg.MustBind[Car](rentals)
	taxis := typereg.New("taxi")
	typereg.MustBind[Car](taxis)

	rentals.MustRegister(SUV{})
	rentals.MustRegister(Sedan{})
	taxis.MustRegister(Sedan{})

	fmt.Println(rentals.Names())
	fmt.Println(taxis.Names())

	// Output:
	// [SUV Sedan]
	// [Sedan]
}
