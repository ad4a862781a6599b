package main

import "github.com/ncc-uat/ncc-admin-services/cmd"

func main() {
	cmd.Execute()
}
