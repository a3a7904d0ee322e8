package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	botvac "github.com/joshp123/botvac-golang"
)

func main() {
	serial := flag.String("serial", os.Getenv("BOTVAC_SERIAL"), "robot serial")
	secret := flag.String("secret", os.Getenv("BOTVAC_SECRET"), "robot secret")
	name := flag.String("name", "", "robot display name")
	baseURL := flag.String("base-url", "", "override the Nucleo endpoint")
	timeout := flag.Duration("timeout", 30*time.Second, "request timeout")
	debug := flag.Bool("debug", false, "log each command send")
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}
	if *serial == "" || *secret == "" {
		fatal("config", fmt.Errorf("-serial and -secret are required (or BOTVAC_SERIAL/BOTVAC_SECRET)"))
	}

	cfg := botvac.Config{
		Serial:  *serial,
		Secret:  *secret,
		Name:    *name,
		BaseURL: *baseURL,
		Timeout: *timeout,
	}
	if *debug {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		cfg.Logger = &logger
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout+10*time.Second)
	defer cancel()

	robot, err := botvac.NewRobot(ctx, cfg)
	if err != nil {
		fatal("connect", err)
	}

	switch flag.Arg(0) {
	case "state":
		state, err := robot.GetRobotState(ctx)
		if err != nil {
			fatal("state", err)
		}
		printJSON(state)
	case "services":
		printJSON(robot.AvailableServices())
	case "start":
		startCmd(ctx, robot, flag.Args()[1:])
	case "pause":
		run(robot.PauseCleaning(ctx))
	case "resume":
		run(robot.ResumeCleaning(ctx))
	case "stop":
		run(robot.StopCleaning(ctx))
	case "dock":
		run(robot.SendToBase(ctx))
	case "schedule":
		scheduleCmd(ctx, robot, flag.Args()[1:])
	default:
		usage()
		os.Exit(2)
	}
}

func startCmd(ctx context.Context, robot *botvac.Robot, args []string) {
	fs := flag.NewFlagSet("start", flag.ExitOnError)
	mode := fs.String("mode", "turbo", "cleaning mode: eco or turbo")
	nav := fs.String("nav", "extra-care", "navigation mode: normal or extra-care")
	_ = fs.Parse(args)

	cleaningMode := botvac.CleaningModeTurbo
	switch *mode {
	case "eco":
		cleaningMode = botvac.CleaningModeEco
	case "turbo":
	default:
		fatal("start", fmt.Errorf("unknown mode %q", *mode))
	}

	navigationMode := botvac.NavigationModeExtraCare
	switch *nav {
	case "normal":
		navigationMode = botvac.NavigationModeNormal
	case "extra-care":
	default:
		fatal("start", fmt.Errorf("unknown navigation mode %q", *nav))
	}

	run(robot.StartCleaning(ctx, cleaningMode, navigationMode))
}

func scheduleCmd(ctx context.Context, robot *botvac.Robot, args []string) {
	if len(args) < 1 {
		usage()
		os.Exit(2)
	}
	switch args[0] {
	case "get":
		schedule, err := robot.GetSchedule(ctx)
		if err != nil {
			fatal("schedule get", err)
		}
		printJSON(schedule)
	case "enable":
		if err := robot.SetScheduleEnabled(ctx, true); err != nil {
			fatal("schedule enable", err)
		}
		fmt.Println("ok")
	case "disable":
		if err := robot.SetScheduleEnabled(ctx, false); err != nil {
			fatal("schedule disable", err)
		}
		fmt.Println("ok")
	case "status":
		enabled, err := robot.ScheduleEnabled(ctx)
		if err != nil {
			fatal("schedule status", err)
		}
		fmt.Println(enabled)
	default:
		usage()
		os.Exit(2)
	}
}

func run(resp *botvac.CommandResponse, err error) {
	if err != nil {
		fatal("command", err)
	}
	printJSON(resp)
}

func printJSON(value any) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		fatal("format json", err)
	}
	fmt.Println(string(data))
}

func usage() {
	fmt.Println("botvac-cli [flags] <command> [args]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  state")
	fmt.Println("  services")
	fmt.Println("  start [-mode eco|turbo] [-nav normal|extra-care]")
	fmt.Println("  pause")
	fmt.Println("  resume")
	fmt.Println("  stop")
	fmt.Println("  dock")
	fmt.Println("  schedule get|enable|disable|status")
}

func fatal(action string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", action, err)
	os.Exit(1)
}
