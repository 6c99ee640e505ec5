package main

import (
	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/config"
	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()
	r.Run(":8080")
}
