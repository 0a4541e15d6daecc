package main

import (
	"encoding/json"

	log "github.com/sirupsen/logrus"

	"github.com/ndtuan/omap/identity"
	"github.com/ndtuan/omap/omap"
	"github.com/ndtuan/omap/record"
)

func main() {
	logger := log.WithFields(log.Fields{"demo": "omap"})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.Level = log.InfoLevel

	m := omap.New[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 3)
	logger.Infof("size=%d keys=%v values=%v", m.Size(), m.Keys(), m.Values())
	m.ForEach(func(v int, k string) {
		logger.Infof("entry %s=%d", k, v)
	})
	m.Delete("a")
	m.Set("a", 4)
	logger.Infof("after delete+re-add: keys=%v", m.Keys())

	type point struct {
		X, Y int
	}
	im := identity.NewMap[*point, string]()
	p1 := identity.NewRef(&point{X: 1, Y: 2})
	p2 := identity.NewRef(&point{X: 1, Y: 2})
	im.Set(p1, "first")
	logger.Infof("identity: has(p1)=%v has(p2)=%v", im.Has(p1), im.Has(p2))

	r, err := record.FromMap(m)
	if err != nil {
		logger.Fatal(err)
	}
	data, err := json.Marshal(r)
	if err != nil {
		logger.Fatal(err)
	}
	logger.Infof("record: %s", string(data))
}
