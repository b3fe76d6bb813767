// Command memtest pins a region of memory and runs the pattern test battery
// against it, reporting every address whose two halves disagreed.
package main

func main() {
	execute()
}
