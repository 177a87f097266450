// Command stelctl decodes STEL files and prints their sections.
package main

func main() {
	execute()
}
