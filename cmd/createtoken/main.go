package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"attendly.com/attendly/security"
)

func main() {
	id := flag.Uint("id", 0, "employee id")
	name := flag.String("name", "", "employee name")
	email := flag.String("email", "", "employee email")
	role := flag.String("role", "employee", "role claim (employee or admin)")
	ttl := flag.Int64("ttl", 3600, "token lifetime in seconds")
	flag.Parse()

	if *id == 0 {
		log.Fatal("-id is required")
	}

	secret := os.Getenv("ATTENDLY_SIGNING_SECRET")
	if secret == "" {
		log.Fatal("ATTENDLY_SIGNING_SECRET is not set")
	}

	token, err := security.CreateEmployeeToken(&security.EmployeeIdentity{
		Id:    *id,
		Name:  *name,
		Email: *email,
		Role:  *role,
	}, secret, *ttl)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(token)
}
