// Package main runs the index administration API: token verification and
// the approval lifecycle of generated passwords over a JSON document store.
package main

import "github.com/indexadmin/indexadmin/internal"

func main() {
	internal.Run()
}
