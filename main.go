package main

import "github.com/medreach/hospital_backend/cmd"

func main() {
	cmd.Execute()
}
