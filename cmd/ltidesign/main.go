// Command ltidesign cascades and discretizes continuous-time transfer
// functions described in a filter-bank YAML file.
//
// Usage:
//
//	ltidesign cascade -f bank.yaml [-o text|yaml]
//	ltidesign discretize -f bank.yaml [--fs 48000] [--prewarp 1000] [--cascade] [-o text|yaml]
//	ltidesign prototypes
//
// Examples:
//
//	ltidesign cascade -f internal/bank/testdata/butter_notch.yaml
//	ltidesign discretize -f bank.yaml --fs 1000 --cascade -o yaml
//	ltidesign -v discretize -f bank.yaml
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
