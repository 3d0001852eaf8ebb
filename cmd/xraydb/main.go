package main

import (
	"os"

	"github.com/RoanBrand/xraydb/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
