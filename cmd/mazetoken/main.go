// Command mazetoken issues bearer tokens for the maze API.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	mazeapi "github.com/beka-birhanu/vinom-maze/api/maze"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/joho/godotenv"
)

func main() {
	subject := flag.String("sub", "", "token subject")
	scopes := flag.String("scopes", mazeapi.WriteScope, "comma separated scopes")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()
	secret, issuer := os.Getenv("JWT_SECRET"), os.Getenv("JWT_ISSUER")
	if secret == "" || issuer == "" || *subject == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET, JWT_ISSUER and -sub are required")
		os.Exit(2)
	}

	var scopeList []string
	for _, s := range strings.Split(*scopes, ",") {
		if s = strings.TrimSpace(s); s != "" {
			scopeList = append(scopeList, s)
		}
	}

	signed, err := token.NewJwtService(secret, issuer).Generate(*subject, scopeList, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "signing token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(signed)
}
