package main

import (
	"context"
	"fmt"
	"net"

	"github.com/gin-gonic/gin"
	"github.com/pkg/browser"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/phyten/contrastcheck/internal/config"
	"github.com/phyten/contrastcheck/internal/server"
)

func serveCmd(ctx context.Context, args []string, sio stdio) int {
	fs := newFlagSet("serve", sio.stderr)
	var c commonFlags
	c.bind(fs)
	c.bindSize(fs)
	fs.Var(stringFlag{&c.layer.Server.Addr}, "addr", "listen address")
	fs.Var(boolFlag{&c.layer.Server.OpenBrowser}, "open", "open the UI in a browser")
	fs.Var(intFlag{&c.layer.Audit.Jobs}, "jobs", "max parallel evaluations per /api/audit request")
	if err := fs.Parse(args); err != nil {
		return parseError(err)
	}

	base := config.Defaults()
	base.LogLevel = "info"
	settings, err := loadSettings(base, &c, sio.getenv)
	if err != nil {
		return usageError(sio.stderr, "serve", err)
	}
	log := newLogger(settings, sio.stderr)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewBuildInfoCollector(),
	)
	gin.SetMode(gin.ReleaseMode)
	srv := server.New(server.Options{
		Lang:     resolveLang(settings.Check.Lang, sio.getenv),
		Jobs:     settings.Audit.Jobs,
		Defaults: auditDefaults(settings),
	}, log, registry)

	ln, err := net.Listen("tcp", settings.Server.Addr)
	if err != nil {
		log.WithError(err).Error("listen failed")
		return exitError
	}
	url := browserURL(ln.Addr())
	fmt.Fprintf(sio.stderr, "contrastcheck serve listening on %s\n", url)
	if settings.Server.OpenBrowser {
		browser.Stdout = sio.stderr
		browser.Stderr = sio.stderr
		if err := browser.OpenURL(url); err != nil {
			log.WithError(err).Warn("could not open browser")
		}
	}
	if err := srv.Serve(ctx, ln); err != nil {
		log.WithError(err).Error("server stopped")
		return exitError
	}
	return exitOK
}

// browserURL turns a listener address into a URL a local browser can open.
// Wildcard hosts become localhost.
func browserURL(addr net.Addr) string {
	host, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return "http://" + addr.String() + "/"
	}
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port) + "/"
}
