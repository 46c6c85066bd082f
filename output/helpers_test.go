package output

import "github.com/vegasq/flexiql/query"

func peopleResult() *query.Result {
	return &query.Result{
		Headers: []string{"name", "age"},
		Rows: [][]string{
			{"Ann", "30"},
			{"Bob", "25"},
		},
	}
}

func emptyResult() *query.Result {
	return &query.Result{Headers: []string{"name", "age"}, Rows: [][]string{}}
}
