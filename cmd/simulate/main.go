package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"solar_household/internal/config"
	"solar_household/internal/logging"
	"solar_household/internal/model"
	"solar_household/internal/simulator"
	"solar_household/internal/solar"
)

func main() {
	householdPath := flag.String("config", "household.json", "path to household JSON config")
	days := flag.Int("days", 3, "number of days to simulate")
	asJSON := flag.Bool("json", false, "emit the full run as JSON instead of tables")
	savePath := flag.String("save", "", "re-emit the normalized household config to this path")
	flag.Parse()

	_ = godotenv.Load()
	log := logging.New("info")

	h, err := config.LoadHousehold(*householdPath)
	if err != nil {
		log.WithError(err).Fatal("loading household config")
	}

	if *savePath != "" {
		if err := config.WriteHousehold(*savePath, h); err != nil {
			log.WithError(err).Fatal("saving household config")
		}
	}

	clock := simulator.NewClock(solar.DefaultProfile())
	run, err := clock.Run(h, *days, nil)
	if err != nil {
		log.WithError(err).Fatal("simulation")
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(run); err != nil {
			log.WithError(err).Fatal("encoding run")
		}
		return
	}

	printRun(h, run)
}

func printRun(h model.Household, run *model.SimulationRun) {
	fmt.Printf("Household: %d appliances, %.0f W connected load, panel %.0f W, battery %.0f Wh\n",
		len(h.Appliances), h.TotalConnectedLoadW(), h.System.PanelCapacityW, h.System.BatteryCapacityWh)

	for day := 0; day < run.Days; day++ {
		fmt.Printf("\nDay %d\n", day+1)
		fmt.Printf("%-5s %10s %12s %12s %12s  %s\n",
			"Hour", "Gen (W)", "Used (W)", "Batt (Wh)", "Lost (Wh)", "Running")

		for _, rec := range run.Day(day) {
			fmt.Printf("%-5d %10.1f %12.1f %12.1f %12.1f  %s\n",
				rec.Hour, rec.GenerationW, rec.ConsumptionW, rec.BatteryWh, rec.CurtailedWh,
				runningNames(rec))
		}

		s := run.Summaries[day]
		fmt.Printf("Totals: generated %.0f Wh, consumed %.0f Wh, curtailed %.0f Wh, battery at %.0f Wh\n",
			s.GenerationWh, s.ConsumptionWh, s.CurtailedWh, s.EndBatteryWh)
		for _, a := range s.Appliances {
			if a.DeficitHours > 0 {
				fmt.Printf("  DEFICIT: %s ran %dh of required %dh (short %dh)\n",
					a.Name, a.HoursRun, a.MinRuntimeHours, a.DeficitHours)
			}
		}
	}
}

func runningNames(rec model.HourlyRecord) string {
	var names []string
	for _, a := range rec.Appliances {
		if a.Running {
			names = append(names, a.Name)
		}
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
