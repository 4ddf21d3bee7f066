package seeds

func SeedAll() error {
	if err := SeedHardware(); err != nil {
		return err
	}
	if err := SeedProfessionals(); err != nil {
		return err
	}
	return nil
}
