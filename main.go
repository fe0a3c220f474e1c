package main

import "github.com/frahmantamala/organization-management/cmd"

func main() {
	cmd.Execute()
}
