// Command bebop_node runs the Bebop driver as a standalone ROS node.
// Without hardware around it flies the simulated device; a real SDK
// backend drops in behind the same bebop.Device interface.
package main

import (
	"fmt"
	"os"

	"github.com/edwinhayes/rosgo/ros"

	"github.com/autonomylab/bebop-driver-go/bebop"
	"github.com/autonomylab/bebop-driver-go/driver"
)

func main() {
	node, err := ros.NewNode("/bebop", os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
	defer node.Shutdown()

	cfg := driver.ConfigFromParams(node)
	drv, err := driver.Start(node, bebop.NewSim(), cfg)
	if err != nil {
		(*node.Logger()).Error(err)
		os.Exit(1)
	}
	defer drv.Stop()

	for node.OK() {
		node.SpinOnce()
	}
}
