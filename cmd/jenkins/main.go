package main

import (
	"os"

	"jenkins/config"
	"jenkins/pkg/log"
	"jenkins/version"

	"github.com/urfave/cli"
)

var conf *config.Config

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Errorf("jenkins exit with error:%+v", err)
		log.Close()
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "jenkins"
	app.Usage = "Jenkins one-at-a-time hashing tool"
	app.Version = version.String()
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "conf",
			Usage: "run with the specific configuration.",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "debug model, will open stdout log. high priority than conf.debug.",
		},
		cli.StringFlag{
			Name:  "log",
			Usage: "log will printing file {log}. high priority than conf.log.",
		},
		cli.IntFlag{
			Name:  "log-vl",
			Usage: "log verbose level. high priority than conf.log_vl.",
		},
	}
	app.Commands = []cli.Command{
		sumCommand,
		csvCommand,
		ringCommand,
		serveCommand,
	}
	app.Before = setup
	app.After = func(c *cli.Context) error {
		return log.Close()
	}
	return app
}

func setup(c *cli.Context) (err error) {
	path := c.GlobalString("conf")
	if conf, err = config.Load(path); err != nil {
		return
	}
	// high priority start
	if c.GlobalBool("debug") {
		conf.Debug = true
	}
	if l := c.GlobalString("log"); l != "" {
		conf.Log = l
	}
	if vl := c.GlobalInt("log-vl"); vl > 0 {
		conf.LogVL = vl
	}
	// high priority end
	if _, err = log.Init(&conf.Config); err != nil {
		return
	}
	log.V(1).Infof("jenkins version[%s] loaded config %q", version.String(), path)
	return
}
