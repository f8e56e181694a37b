// Command teamtracker runs the team task and tardiness tracker bot.
package main

func main() {
	Execute()
}
