package elements_test

import (
	"fmt"

	"github.com/goliatone/go-elements"
	"github.com/goliatone/go-elements/pkg/dom"
	"github.com/goliatone/go-elements/pkg/model"
	"github.com/goliatone/go-elements/pkg/tagged"
)

func ExampleCreate() {
	node, err := elements.Create(elements.Template{
		Tag:       "div",
		ID:        "x",
		ClassList: []string{"a", "b"},
		Children:  []elements.Template{{Tag: "p", Text: "hi"}},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(dom.OuterHTML(node))
	// Output: <div id="x" class="a b"><p>hi</p></div>
}

func ExampleCreateMany() {
	nodes, err := elements.CreateMany(
		[]elements.Template{{Tag: "p", Text: "one"}, {Tag: "p", Text: "two"}, {Tag: "div"}},
		elements.NodeMap{model.Wire(2, 0, 1)},
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(dom.OuterHTML(nodes[2]))
	// Output: <div><p>one</p><p>two</p></div>
}

func ExampleE() {
	node, err := elements.E("p", "Hello {}!", tagged.Template(elements.Template{Tag: "strong", Text: "Ada"}))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(dom.OuterHTML(node))
	// Output: <p>Hello <strong>Ada</strong>!</p>
}

func ExampleMerge() {
	base := elements.Template{Tag: "button", ClassList: []string{"btn"}, Text: "OK"}
	merged := elements.Merge(base, elements.Template{Text: "Cancel"})
	fmt.Println(merged.Tag, merged.ClassList, merged.Text, base.Text)
	// Output: button [btn] Cancel OK
}
