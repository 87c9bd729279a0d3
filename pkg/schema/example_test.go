package schema_test

import (
	"fmt"

	"github.com/ontouml/ontokit/pkg/model"
	"github.com/ontouml/ontokit/pkg/schema"
)

func ExampleSerializer_Serialize() {
	g := model.New(model.Project{ID: "p1", Name: "Example"})
	_ = g.Add("", &model.Package{Header: model.Header{ID: "pkg", Name: "People"}})
	_ = g.Add("pkg", &model.Class{Header: model.Header{
		ID:           "person",
		Name:         "Person",
		Stereotypes:  []string{"kind"},
		TaggedValues: []model.TaggedValue{{Name: "version", Kind: model.ValueInteger, Value: "2"}},
	}})

	doc, err := (&schema.Serializer{}).Serialize(g, "pkg")
	if err != nil {
		fmt.Println(err)
		return
	}
	data, _ := schema.Marshal(doc)
	fmt.Println(string(data))
	// Output:
	// {
	//   "type": "Package",
	//   "id": "pkg",
	//   "name": "People",
	//   "elements": [
	//     {
	//       "type": "Class",
	//       "id": "person",
	//       "name": "Person",
	//       "stereotypes": [
	//         "kind"
	//       ],
	//       "propertyAssignments": {
	//         "version": 2
	//       }
	//     }
	//   ]
	// }
}
