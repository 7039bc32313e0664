package cssom_test

import (
	"fmt"

	"github.com/tdewolff/cssom"
)

func ExampleParseDeclaration() {
	d := cssom.ParseDeclaration("border: 1px dashed blue; border-top-color: yellow", nil)
	fmt.Println(d.GetPropertyValue("border-top"))
	fmt.Println(d.Minify())
	// Output:
	// 1px dashed yellow
	// border:1px dashed blue;border-top-color:yellow
}

func ExampleDeclaration_RemoveProperty() {
	d := cssom.ParseDeclaration("border-width: 1px; border-bottom-width: 3px", nil)
	fmt.Println(d.RemoveProperty("border-bottom-width"))
	fmt.Println(d.GetPropertyValue("border-bottom-width"))
	// Output:
	// 3px
	// 1px
}

func ExampleDeclaration_Optimize() {
	d := cssom.ParseDeclaration(`grid-template: "a a a" "b b b" max-content`, nil)
	fmt.Println(d.GetPropertyValue("grid-template-rows"))
	fmt.Println(d.Optimize())
	// Output:
	// auto max-content
	// grid-template:"a a a" "b b b" max-content
}

func ExampleErrorList() {
	errs := &cssom.ErrorList{}
	d := cssom.ParseDeclaration("background: gray, yellow; color: red", errs)
	fmt.Println(d.Length(), errs.Errors[0])
	// Output:
	// 1 conflict error in background: background color only allowed in the final layer
}
