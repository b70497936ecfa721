package animation

const (
	easeOut     = "power2.out"
	easeBack    = "back.out(1.7)"
	viewStart   = "top 80%"
	viewEnd     = "bottom 20%"
	heroScopeID = "#page"
)

func onScroll(trigger, start string) *ScrollTrigger {
	return &ScrollTrigger{Trigger: trigger, Start: start, End: viewEnd}
}

func heroIntro(targets string) Tween {
	return Tween{Targets: targets, From: Props{"opacity": 0, "y": 50}, Duration: 1, Ease: easeOut}
}

func riseOnScroll(targets, trigger string) Tween {
	return Tween{
		Targets:  targets,
		From:     Props{"opacity": 0, "y": 40},
		Duration: 0.8,
		Ease:     easeOut,
		Scroll:   onScroll(trigger, viewStart),
	}
}

// Home animates the landing page.
func Home() Batch {
	return Batch{
		Scope: heroScopeID,
		Delay: 0.5,
		Sequence: []Tween{
			{Targets: ".hero-badge", From: Props{"opacity": 0, "y": 30}, Duration: 0.8, Ease: easeOut},
			{Targets: ".hero-logo", From: Props{"opacity": 0, "scale": 0.5, "rotation": -180}, Duration: 1.2, Ease: easeBack, Position: "-=0.5"},
			{Targets: ".hero-title", From: Props{"opacity": 0, "y": 50}, Duration: 1, Ease: easeOut, Position: "-=0.8"},
			{Targets: ".hero-subtitle", From: Props{"opacity": 0, "y": 30}, Duration: 0.8, Ease: easeOut, Position: "-=0.7"},
			{Targets: ".hero-description", From: Props{"opacity": 0, "y": 30}, Duration: 0.8, Ease: easeOut, Position: "-=0.6"},
			{Targets: ".hero-buttons", From: Props{"opacity": 0, "y": 30}, Duration: 0.8, Ease: easeOut, Position: "-=0.5"},
			{Targets: ".hero-stats", From: Props{"opacity": 0, "x": 50}, Duration: 1, Ease: easeOut, Position: "-=0.8"},
		},
		Tweens: []Tween{
			{Targets: ".fiber-line", From: Props{"opacity": 0, "scaleX": 0}, Duration: 2, Stagger: 0.3, Ease: easeOut},
			{Targets: ".network-node", From: Props{"opacity": 0, "scale": 0}, Duration: 0.8, Stagger: 0.2, Ease: easeBack},
			{
				Targets: ".stat-item", From: Props{"opacity": 0, "scale": 0.8}, Duration: 0.6, Stagger: 0.1, Ease: easeBack,
				Scroll: onScroll("#stats", viewStart),
			},
			riseOnScroll(".implementation-content", "#implementacion"),
			{
				Targets: ".tech-card", From: Props{"opacity": 0, "y": 40, "scale": 0.95}, Duration: 0.8, Stagger: 0.15, Ease: easeBack,
				Scroll: onScroll("#implementacion", "top 70%"),
			},
			{
				Targets: ".trend-item", From: Props{"opacity": 0, "x": -30}, Duration: 0.6, Stagger: 0.1, Ease: easeOut,
				Scroll: onScroll("#implementacion", "top 60%"),
			},
			riseOnScroll(".cta-content", "#cta"),
		},
	}
}

// About animates the company page.
func About() Batch {
	return Batch{
		Scope: heroScopeID,
		Tweens: []Tween{
			heroIntro(".about-hero-content"),
			{
				Targets: ".mission-vision-card", From: Props{"opacity": 0, "y": 60}, Duration: 0.8, Stagger: 0.2, Ease: easeOut,
				Scroll: onScroll("#mision-vision", viewStart),
			},
			{
				Targets: ".value-item", From: Props{"opacity": 0, "scale": 0.9}, Duration: 0.6, Stagger: 0.1, Ease: easeBack,
				Scroll: onScroll("#valores", viewStart),
			},
			{
				Targets: ".stat-card", From: Props{"opacity": 0, "y": 40}, Duration: 0.8, Stagger: 0.15, Ease: easeOut,
				Scroll: onScroll("#logros", viewStart),
			},
			riseOnScroll(".team-content", "#equipo"),
			riseOnScroll(".about-cta-content", "#cta"),
		},
	}
}

// Services animates the services listing.
func Services() Batch {
	return Batch{
		Scope: heroScopeID,
		Tweens: []Tween{
			heroIntro(".services-hero-content"),
			{
				Targets: ".service-card", From: Props{"opacity": 0, "y": 60, "scale": 0.9}, Duration: 0.8, Stagger: 0.15, Ease: easeBack,
				Scroll: onScroll("#servicios-grid", viewStart),
			},
			{
				Targets: ".tech-badge", From: Props{"opacity": 0, "scale": 0.8}, Duration: 0.6, Stagger: 0.1, Ease: easeBack,
				Scroll: onScroll("#tecnologias", viewStart),
			},
			riseOnScroll(".services-cta-content", "#cta"),
		},
	}
}

// ServiceDetail animates a service page.
func ServiceDetail() Batch {
	return Batch{
		Scope: heroScopeID,
		Tweens: []Tween{
			heroIntro(".service-detail-hero"),
			{
				Targets: ".content-section", From: Props{"opacity": 0, "y": 40}, Duration: 0.8, Stagger: 0.2, Ease: easeOut,
				Scroll: onScroll("#contenido", viewStart),
			},
			{
				Targets: ".gallery-item", From: Props{"opacity": 0, "scale": 0.9}, Duration: 0.6, Stagger: 0.1, Ease: easeBack,
				Scroll: onScroll("#galeria", viewStart),
			},
			riseOnScroll(".service-cta", "#cta"),
		},
	}
}

// Contact animates the contact page.
func Contact() Batch {
	return Batch{
		Scope: heroScopeID,
		Tweens: []Tween{
			heroIntro(".contact-hero-content"),
			{
				Targets: ".contact-info-card", From: Props{"opacity": 0, "x": -50}, Duration: 0.8, Stagger: 0.2, Ease: easeOut,
				Scroll: onScroll("#contacto-seccion", viewStart),
			},
			{
				Targets: ".contact-form", From: Props{"opacity": 0, "x": 50}, Duration: 0.8, Ease: easeOut,
				Scroll: onScroll("#contacto-seccion", viewStart),
			},
			riseOnScroll(".map-content", "#mapa"),
		},
	}
}

// ServiceCardHover lifts a service card and nudges its icon and arrow.
func ServiceCardHover() Hover {
	return Hover{
		Enter: []HoverStep{
			{To: Props{"y": -8, "scale": 1.02}, Duration: 0.3, Ease: easeOut},
			{Selector: ".service-icon", To: Props{"rotation": 5, "scale": 1.1}, Duration: 0.3, Ease: easeBack},
			{Selector: ".more-info-arrow", To: Props{"x": 5}, Duration: 0.3, Ease: easeOut},
		},
		Leave: []HoverStep{
			{To: Props{"y": 0, "scale": 1}, Duration: 0.3, Ease: easeOut},
			{Selector: ".service-icon", To: Props{"rotation": 0, "scale": 1}, Duration: 0.3, Ease: easeOut},
			{Selector: ".more-info-arrow", To: Props{"x": 0}, Duration: 0.3, Ease: easeOut},
		},
	}
}

// LogoHover pulses the brand mark.
func LogoHover() Hover {
	return Hover{
		Enter: []HoverStep{
			{Selector: ".logo-container", To: Props{"scale": 1.05}, Duration: 0.3, Ease: easeOut},
			{Selector: ".logo-orbit", To: Props{"scale": 1.1}, Duration: 0.3, Ease: easeOut},
			{Selector: ".logo-icon", To: Props{"rotation": 15, "scale": 1.1}, Duration: 0.3, Ease: easeBack},
			{Selector: ".logo-pulse", To: Props{"scale": 1.5, "opacity": 0.8}, Duration: 0.3, Ease: easeOut},
		},
		Leave: []HoverStep{
			{Selector: ".logo-container", To: Props{"scale": 1}, Duration: 0.3, Ease: easeOut},
			{Selector: ".logo-orbit", To: Props{"scale": 1}, Duration: 0.3, Ease: easeOut},
			{Selector: ".logo-icon", To: Props{"rotation": 0, "scale": 1}, Duration: 0.3, Ease: easeOut},
			{Selector: ".logo-pulse", To: Props{"scale": 1.3, "opacity": 0.2}, Duration: 0.3, Ease: easeOut},
		},
	}
}
