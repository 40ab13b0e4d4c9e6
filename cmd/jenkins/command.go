package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"jenkins/api/server"
	"jenkins/api/service"
	"jenkins/config"
	"jenkins/pkg/hashkit"
	"jenkins/pkg/log"
	"jenkins/pkg/prom"
	"jenkins/pkg/report"
	"jenkins/version"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var errFlag = errors.New("error flags")

var sumCommand = cli.Command{
	Name:      "sum",
	Usage:     "print the digest of every argument",
	ArgsUsage: "VALUE...",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "method,m",
			Usage: "hash method, default conf.method",
		},
		cli.IntFlag{
			Name:  "len,l",
			Usage: "hash only the first len bytes of each value",
		},
	},
	Action: func(c *cli.Context) error {
		if len(c.Args()) == 0 {
			cli.ShowCommandHelp(c, "sum")
			return errFlag
		}
		n := -1
		if c.IsSet("len") || c.IsSet("l") {
			if n = c.Int("len"); n < 0 {
				return errors.Wrapf(hashkit.ErrInvalidLength, "len %d", n)
			}
		}
		return sum(c.App.Writer, pick(c.String("method"), conf.Method), n, c.Args())
	},
}

var csvCommand = cli.Command{
	Name:  "csv",
	Usage: "hash records, one per line, into value,len,hash csv",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "layout",
			Usage: "standard or legacy, default conf.layout",
		},
		cli.StringFlag{
			Name:  "in,i",
			Usage: "input file, - for stdin. default conf.samples",
		},
		cli.StringFlag{
			Name:  "out,o",
			Usage: "output file, locked while writing. default stdout",
		},
	},
	Action: func(c *cli.Context) (err error) {
		layout, err := report.ParseLayout(pick(c.String("layout"), conf.Layout))
		if err != nil {
			return
		}
		values := conf.Samples
		if in := c.String("in"); in != "" {
			if values, err = readValues(in); err != nil {
				return
			}
		}
		w := c.App.Writer
		if out := c.String("out"); out != "" {
			f, ferr := report.CreateFile(out)
			if ferr != nil {
				return ferr
			}
			defer func() {
				if cerr := f.Close(); err == nil {
					err = cerr
				}
			}()
			w = f
		}
		rw, err := report.NewWriter(w, layout, conf.Method)
		if err != nil {
			return
		}
		log.V(1).Infof("csv hashing %d records layout(%s)", len(values), layout)
		return rw.WriteAll(values)
	},
}

var ringCommand = cli.Command{
	Name:      "ring",
	Usage:     "print the ketama node owning every key",
	ArgsUsage: "KEY...",
	Flags: []cli.Flag{
		cli.StringSliceFlag{
			Name:  "node,n",
			Usage: "ring node, repeatable. default conf.ring.nodes",
		},
	},
	Action: func(c *cli.Context) error {
		if nodes := c.StringSlice("node"); len(nodes) > 0 {
			conf.Ring.Nodes = nodes
			conf.Ring.Spots = nil
			if err := conf.Validate(); err != nil {
				return err
			}
		}
		if len(c.Args()) == 0 || len(conf.Ring.Nodes) == 0 {
			cli.ShowCommandHelp(c, "ring")
			return errFlag
		}
		ring, err := conf.NewRing()
		if err != nil {
			return err
		}
		return locate(c.App.Writer, ring, c.Args())
	},
}

var serveCommand = cli.Command{
	Name:  "serve",
	Usage: "serve the hash http api",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "listen",
			Usage: "listen addr, high priority than conf.server.listen",
		},
	},
	Action: func(c *cli.Context) error {
		if l := c.String("listen"); l != "" {
			conf.Server.Listen = l
		}
		return serve(c.GlobalString("conf"))
	},
}

func pick(flag, def string) string {
	if flag != "" {
		return flag
	}
	return def
}

// sum hashes every value, or its first n bytes when n >= 0.
func sum(w io.Writer, method string, n int, values []string) error {
	name, err := hashkit.CanonicalMethod(method)
	if err != nil {
		return err
	}
	hash, _ := hashkit.NewMethod(name)
	for _, v := range values {
		var d uint32
		key := []byte(v)
		switch {
		case n < 0:
			d = hash(key)
		case name == hashkit.HashMethodOneAtATime:
			if d, err = hashkit.Sum32(key, n); err != nil {
				return errors.Wrapf(err, "value %q", v)
			}
		case n > len(key):
			return errors.Wrapf(hashkit.ErrInvalidLength, "value %q len %d", v, n)
		default:
			d = hash(key[:n])
		}
		if _, err = fmt.Fprintf(w, "%08x\t%s\n", d, v); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func readValues(path string) ([]string, error) {
	if path == "-" {
		return report.ReadValues(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()
	return report.ReadValues(f)
}

func locate(w io.Writer, ring *hashkit.HashRing, keys []string) error {
	for _, key := range keys {
		node, _ := ring.GetNode([]byte(key))
		if _, err := fmt.Fprintf(w, "%s\t%s\n", key, node); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func serve(path string) error {
	svc, err := service.New(conf)
	if err != nil {
		return err
	}
	if conf.Server.Metrics {
		prom.Init(nil)
		prom.VersionState(version.String())
	} else {
		prom.On = false
	}
	if path != "" {
		w, err := config.Watch(path, func(c *config.Config) {
			if err := svc.Reload(c); err != nil {
				log.Errorf("ring reload fail:%v", err)
			}
		})
		if err != nil {
			return err
		}
		defer w.Close()
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Run(&conf.Server, svc)
	}()
	return signalHandler(errCh)
}

func signalHandler(errCh <-chan error) error {
	var ch = make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGHUP, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
	for {
		log.Infof("jenkins version[%s] start serving", version.String())
		select {
		case err := <-errCh:
			return err
		case si := <-ch:
			log.Infof("jenkins version[%s] signal(%s) stop the process", version.String(), si.String())
			switch si {
			case syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT:
				log.Infof("jenkins version[%s] exited", version.String())
				return nil
			case syscall.SIGHUP:
			default:
				return nil
			}
		}
	}
}
