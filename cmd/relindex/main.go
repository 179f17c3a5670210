// Command relindex reads entity and relation commands from standard
// input and answers report queries against the incremental
// maximum-in-degree index.
package main

func main() {
	Execute()
}
