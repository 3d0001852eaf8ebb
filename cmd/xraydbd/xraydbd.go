package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"

	"github.com/RoanBrand/xraydb"
	"github.com/RoanBrand/xraydb/config"
	"github.com/RoanBrand/xraydb/http"
	"github.com/RoanBrand/xraydb/log"
	"github.com/RoanBrand/xraydb/materials"
	"github.com/kardianos/service"
)

type app struct {
	conf    *config.Config
	catalog *materials.Catalog
}

func (p *app) Start(s service.Service) error {
	go p.run()
	return nil
}

func (p *app) run() {
	execPath, err := os.Executable()
	if err != nil {
		panic(err)
	}
	dir := filepath.Dir(execPath)

	conf, err := config.LoadConfig(filepath.Join(dir, "config.json"))
	if err != nil {
		panic(err)
	}
	p.conf = conf

	logFile := conf.LogFile
	if !filepath.IsAbs(logFile) {
		logFile = filepath.Join(dir, logFile)
	}
	log.Setup(logFile, conf.LogMaxSizeMB, conf.DebugMode)

	db, err := xraydb.Open()
	if err != nil {
		log.Fatal("Error loading X-ray dataset: ", err)
	}
	v := db.Version()
	log.Printf("Loaded X-ray dataset %s (%s) digest %s\n", v.Tag, v.Date, db.Digest())

	if p.catalog, err = materials.FromConfig(conf); err != nil {
		log.Fatal(err)
	}
	// warm the catalog so source errors show up at startup
	if err = p.catalog.Refresh(context.Background()); err != nil {
		log.Println("Error loading material catalog:", err)
	}

	http.SetupServer(db, p.catalog)
	if err = http.StartServer(conf.HTTPServerPort); err != nil {
		panic(err)
	}
}

func (p *app) Stop(s service.Service) error {
	return nil
}

func main() {
	svcFlag := flag.String("service", "", "Control the system service.")
	flag.Parse()

	svcConfig := &service.Config{
		Name:        "xraydb",
		DisplayName: "X-ray Database Service",
		Description: "Serves X-ray cross-sections, scattering factors and material attenuation over HTTP",
	}

	prg := &app{}
	s, err := service.New(prg, svcConfig)
	if err != nil {
		log.Fatal(err)
	}

	if *svcFlag != "" {
		err = service.Control(s, *svcFlag)
		if err != nil {
			log.Printf("Valid actions: %q\n", service.ControlAction)
			log.Fatal(err)
		}
		return
	}

	logger, err := s.Logger(nil)
	if err != nil {
		log.Fatal(err)
	}
	err = s.Run()
	if err != nil {
		logger.Error(err)
	}
}
