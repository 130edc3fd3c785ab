//
// Articles REST
// =============
// A HTTP REST service managing articles and their authors, backed by an
// in-memory store or Postgres.
//
// Boot the server:
// ----------------
// $ go run . serve
// $ REST_DB_DRIVER=postgres REST_DB_DSN=postgres://... go run . serve
//
// Client requests:
// ----------------
// $ curl -X POST -d '{"name":"Jane"}' http://localhost:3333/v1/authors
// {"id":1,"name":"Jane"}
//
// $ curl -X POST -d '{"name":"A1","author":"Jane","authorId":1}' http://localhost:3333/v1/articles
// {"id":1,"name":"A1","author":"Jane","authorId":1}
//
// Create and update responses carry no _links; fetch the article to get them.
//
// $ curl http://localhost:3333/v1/articles/1
// {"id":1,"name":"A1","author":"Jane","authorId":1,"_links":[{"rel":"self","href":"/v1/articles/1"},{"rel":"author","href":"/v1/authors/1"}]}
//
// $ curl http://localhost:3333/v1/articles?author=Ja
// [{"id":1,"name":"A1","author":"Jane","authorId":1,"_links":[...]}]
//
// $ curl -X DELETE http://localhost:3333/v1/articles/1
//
// $ curl http://localhost:3333/v1/articles/1
// {"status":"Resource not found.","error":"The Article with id '1' was not found"}
//
// Generate the route docs with `go run . routes`.
//
package main

import (
	"fmt"
	"os"
)

const ServiceName = "rest"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
