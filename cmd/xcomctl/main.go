// cmd/xcomctl/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tamzrod/xcom485i/internal/addresses"
	"github.com/tamzrod/xcom485i/internal/client"
	"github.com/tamzrod/xcom485i/internal/config"
)

func main() {
	if len(os.Args) < 3 {
		usage()
	}

	cfgPath := os.Args[1]
	command := os.Args[2]
	args := os.Args[3:]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	config.Normalize(cfg)

	// --------------------
	// Logger + client
	// --------------------

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(zerolog.InfoLevel)
	if cfg.Xcom.Debug {
		logger = logger.Level(zerolog.DebugLevel)
	}

	c, closeClient, err := client.Build(*cfg, logger)
	if err != nil {
		log.Fatalf("client build failed: %v", err)
	}
	defer closeClient()

	space := c.Addresses()

	// --------------------
	// Dispatch
	// --------------------

	switch command {
	case "read-param":
		if len(args) < 2 {
			usage()
		}
		dev := resolveDevice(space, args[0])
		addr := parseRegister(args[1]) + readWindow(args[2:])

		v, err := c.ReadParameter(dev, addr)
		if err != nil {
			fatalExchange(err)
		}
		fmt.Println(v)

	case "write-param":
		if len(args) < 3 {
			usage()
		}
		dev := resolveDevice(space, args[0])
		addr := parseRegister(args[1]) + writeWindow(args[3:])

		value, err := strconv.ParseFloat(args[2], 32)
		if err != nil {
			log.Fatalf("invalid value %q: %v", args[2], err)
		}

		echo, err := c.WriteParameter(dev, addr, float32(value))
		if err != nil {
			fatalExchange(err)
		}
		fmt.Printf("wrote %d registers\n", echo)

	case "read-info":
		if len(args) < 2 {
			usage()
		}
		dev := resolveDevice(space, args[0])

		v, err := c.ReadInfo(dev, parseRegister(args[1]))
		if err != nil {
			fatalExchange(err)
		}
		fmt.Println(v)

	case "read-time":
		t, err := c.ReadTime(space.System)
		if err != nil {
			fatalExchange(err)
		}
		fmt.Println(t.Format(time.RFC3339))

	case "write-time":
		echo, err := c.WriteTime(space.System, time.Now())
		if err != nil {
			fatalExchange(err)
		}
		fmt.Printf("wrote %d registers\n", echo)

	case "messages":
		// Count first, then drain exactly that many: each read deletes
		// one message inside the gateway.
		count, err := c.PendingMessageCount()
		if err != nil {
			fatalExchange(err)
		}
		fmt.Printf("pending messages: %d\n", count)

		for i := uint16(0); i < count; i++ {
			m, err := c.ReadMessage()
			if err != nil {
				fatalExchange(err)
			}
			fmt.Printf("message %d: source=%d id=%d value=%d\n", i, m.DeviceSource, m.MessageID, m.Value())
		}

	default:
		usage()
	}
}

func usage() {
	log.Fatal(`usage: xcomctl <config.yaml> <command> [args]

commands:
  read-param  <device> <register> [flash|min|max]
  write-param <device> <register> <value> [flash|ram]
  read-info   <device> <register>
  read-time
  write-time
  messages`)
}

// resolveDevice maps a device mnemonic to its Modbus unit id: gateway,
// system, bsp, group names (xt, l1..l3, vt, vs, bsp-group) or an indexed
// unicast like xt1, vt12, vs3.
func resolveDevice(space addresses.Space, name string) uint8 {
	switch name {
	case "gateway":
		return space.Gateway
	case "system":
		return space.System
	case "xt":
		return space.XTGroup
	case "l1":
		return space.XTL1Group
	case "l2":
		return space.XTL2Group
	case "l3":
		return space.XTL3Group
	case "vt":
		return space.VTGroup
	case "vs":
		return space.VSGroup
	case "bsp-group":
		return space.BSPGroup
	case "bsp":
		return space.BSP
	}

	for prefix, ids := range map[string][]uint8{
		"xt": space.XT[:],
		"vt": space.VT[:],
		"vs": space.VS[:],
	} {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		n, err := strconv.Atoi(name[len(prefix):])
		if err != nil || n < 1 || n > len(ids) {
			log.Fatalf("device %q: index out of range (1..%d)", name, len(ids))
		}
		return ids[n-1]
	}

	log.Fatalf("unknown device %q", name)
	return 0
}

func parseRegister(s string) uint16 {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		log.Fatalf("invalid register %q: %v", s, err)
	}
	return uint16(n)
}

func readWindow(args []string) uint16 {
	if len(args) == 0 {
		return addresses.ReadFlash
	}
	switch args[0] {
	case "flash":
		return addresses.ReadFlash
	case "min":
		return addresses.ReadMin
	case "max":
		return addresses.ReadMax
	}
	log.Fatalf("unknown read window %q (want flash, min or max)", args[0])
	return 0
}

func writeWindow(args []string) uint16 {
	if len(args) == 0 {
		return addresses.WriteFlashRAM
	}
	switch args[0] {
	case "flash":
		return addresses.WriteFlashRAM
	case "ram":
		return addresses.WriteRAMOnly
	}
	log.Fatalf("unknown write window %q (want flash or ram)", args[0])
	return 0
}

func fatalExchange(err error) {
	if code, ok := client.ExceptionCode(err); ok {
		log.Fatalf("slave exception %d: %v", code, err)
	}
	log.Fatalf("exchange failed: %v", err)
}
