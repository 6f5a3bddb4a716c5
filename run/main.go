package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	mmp "github.com/desiderr/mmp-toolbox-sub001"
	"github.com/maseology/mmio"
)

func main() {

	mdlPrfx := flag.String("prfx", "deployment.", "path prefix to the imported deployment gobs")
	controlFP := flag.String("control", "deployment.mmp", "deployment control file")
	serial := flag.Bool("serial", false, "process profiles serially with a progress bar")
	flag.Parse()

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap(fmt.Sprintf("\nRun complete. n processes: %v", runtime.GOMAXPROCS(0)))

	cfg, ctd, eng, acm := mmp.LoadDomain(*mdlPrfx, *controlFP)
	tt.Print("Deployment load complete\n")

	var prd *mmp.Products
	if *serial {
		prd = mmp.ProcessSerial(cfg, ctd, eng, acm)
	} else {
		prd = mmp.Process(cfg, ctd, eng, acm)
	}
	tt.Print("Processing complete\n")

	if err := prd.WriteProducts(*mdlPrfx+"out.", acm.Recs); err != nil {
		log.Fatalf("run: %v", err)
	}
	if err := mmp.WriteReport(*mdlPrfx+"report.txt", ctd, eng, acm); err != nil {
		log.Fatalf("run: %v", err)
	}

	fmt.Println("\nDeployment Summary\n==================================")
	chkdir := mmio.GetFileDir(*mdlPrfx) + "/check/"
	ctd.Checkandprint(prd.CTD, chkdir)
	eng.Checkandprint(prd.ENG, chkdir)
	acm.Checkandprint(prd.ACM, chkdir)
}
