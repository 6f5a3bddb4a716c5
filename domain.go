package mmp

// LoadDomain loads a deployment's control file and the three per-stream
// record arrays produced by the import collaborator.
func LoadDomain(mdlprfx, controlFP string) (*Config, *Deployment, *Deployment, *Deployment) {
	chkerr := func(err error) {
		if err != nil {
			panic(err)
		}
	}
	cfg, err := LoadConfig(controlFP)
	chkerr(err)
	ctd, err := LoadGobDeployment(mdlprfx + "ctd.gob")
	chkerr(err)
	eng, err := LoadGobDeployment(mdlprfx + "eng.gob")
	chkerr(err)
	acm, err := LoadGobDeployment(mdlprfx + "acm.gob")
	chkerr(err)

	return cfg, ctd, eng, acm
}
