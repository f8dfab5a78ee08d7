// Command snowflake grows a Reiter snowflake and renders the result.
package main

func main() {
	Execute()
}
