package domain

// Company holds the contact details shown across the site.
type Company struct {
	Name         string
	LegalName    string
	AddressLines []string
	MapsURL      string
	Phones       []string
	Email        string
	Hours        []string
	Blurb        string
}

// DefaultCompany returns CJR Solutions' published details with the given
// e-mail address and phone numbers. Empty arguments keep the published ones.
func DefaultCompany(email string, phones ...string) Company {
	c := Company{
		Name:         "CJR Solutions",
		LegalName:    "CJR Solutions Enterprise S.A.C.",
		AddressLines: []string{"Av. Santa Rosa Mz. F Lt. 7D", "Urb. Canto Grande"},
		MapsURL:      "https://maps.google.com/?q=Av.+Santa+Rosa+Mz.+F+Lt.+7D+Urb.+Canto+Grande",
		Phones:       []string{"01-3003429", "964284252"},
		Email:        "cjrsolutionsenterprise@gmail.com",
		Hours:        []string{"Lunes - Viernes: 8:00 - 18:00", "Sábados: 8:00 - 13:00"},
		Blurb:        "Empresa peruana dedicada a brindar soluciones integrales de telecomunicaciones con calidad, eficiencia y compromiso.",
	}
	if email != "" {
		c.Email = email
	}
	var nonEmpty []string
	for _, p := range phones {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	if len(nonEmpty) > 0 {
		c.Phones = nonEmpty
	}
	return c
}

// TelURI returns a tel: link for the first phone number.
func (c Company) TelURI() string {
	if len(c.Phones) == 0 {
		return ""
	}
	return "tel:" + c.Phones[0]
}
