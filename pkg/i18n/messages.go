package i18n

// T translates a message key for the given locale. Unknown keys fall back
// to the default locale, then to the key itself so broken references stay
// visible instead of rendering empty strings.
func T(loc Locale, key string) string {
	if msgs, ok := catalog[loc]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if loc != DefaultLocale {
		if msg, ok := catalog[DefaultLocale][key]; ok {
			return msg
		}
	}
	return key
}

var catalog = map[Locale]map[string]string{
	LocaleDE: {
		// Flash messages
		"flash.contact.success": "Vielen Dank! Ihre Anfrage wurde übermittelt. Wir melden uns so schnell wie möglich bei Ihnen.",
		"flash.contact.error":   "Ihre Anfrage konnte leider nicht verarbeitet werden. Bitte versuchen Sie es später erneut.",

		// Field validation
		"validation.full_name.required":          "Bitte geben Sie Ihren Namen an.",
		"validation.email.required":              "Bitte geben Sie Ihre E-Mail-Adresse an.",
		"validation.email.invalid":               "Bitte geben Sie eine gültige E-Mail-Adresse an.",
		"validation.contact_reason_id.required":  "Bitte wählen Sie einen Kontaktgrund aus.",
		"validation.contact_reason_id.invalid":   "Der gewählte Kontaktgrund ist ungültig.",
		"validation.phone.too_long":              "Die Telefonnummer darf höchstens 50 Zeichen lang sein.",
		"validation.preferred_datetime.invalid":  "Bitte geben Sie einen gültigen Wunschtermin an.",
		"validation.preferred_datetime.not_future": "Der Wunschtermin muss in der Zukunft liegen.",
		"validation.message.too_long":            "Ihre Nachricht darf höchstens 1000 Zeichen lang sein.",

		// Contact form labels
		"form.label.full_name":          "Name",
		"form.label.email":              "E-Mail-Adresse",
		"form.label.contact_reason_id":  "Kontaktgrund",
		"form.label.phone":              "Telefonnummer (optional)",
		"form.label.preferred_datetime": "Wunschtermin (optional)",
		"form.label.message":            "Ihre Nachricht (optional)",
		"form.submit":                   "Anfrage senden",

		// Notification mail
		"mail.subject":            "Neue Anfrage über das Kontaktformular",
		"mail.heading":            "Neue Kontaktanfrage",
		"mail.label.name":         "Name",
		"mail.label.email":        "E-Mail",
		"mail.label.reason":       "Kontaktgrund",
		"mail.label.phone":        "Telefon",
		"mail.label.preferred_at": "Wunschtermin",
		"mail.label.message":      "Nachricht",
		"mail.footer":             "Diese Nachricht wurde automatisch über das Kontaktformular der Praxis-Website versendet.",

		// Navigation / page titles
		"nav.home":      "Startseite",
		"nav.services":  "Leistungen",
		"nav.team":      "Team",
		"nav.faq":       "Häufige Fragen",
		"nav.contact":   "Kontakt",
		"nav.imprint":   "Impressum",
		"nav.privacy":   "Datenschutz",
		"nav.terms":     "AGB",
		"page.home.title":     "Willkommen in unserer Praxis",
		"page.services.title": "Unsere Leistungen",
		"page.team.title":     "Unser Team",
		"page.faq.title":      "Häufig gestellte Fragen",
		"page.contact.title":  "Kontakt & Terminanfrage",
		"page.imprint.title":  "Impressum",
		"page.privacy.title":  "Datenschutzerklärung",
		"page.terms.title":    "Allgemeine Geschäftsbedingungen",

		// Contact reasons (display names, seeded into the reference table)
		"reason.termin":       "Terminanfrage",
		"reason.rezept":       "Rezeptbestellung",
		"reason.ueberweisung": "Überweisung",
		"reason.frage":        "Allgemeine Frage",
		"reason.beschwerde":   "Beschwerde",
		"reason.notfall":      "Notfall",
		"reason.sonstiges":    "Sonstiges",

		// Services
		"services.general.name":        "Allgemeinmedizin",
		"services.general.description": "Hausärztliche Grundversorgung für die ganze Familie.",
		"services.prevention.name":        "Vorsorgeuntersuchungen",
		"services.prevention.description": "Gesundheits-Check-ups und Früherkennungsuntersuchungen.",
		"services.vaccination.name":        "Impfungen",
		"services.vaccination.description": "Alle empfohlenen Standard- und Reiseimpfungen.",
		"services.diagnostics.name":        "Labordiagnostik",
		"services.diagnostics.description": "Blutabnahme und Laboruntersuchungen direkt in der Praxis.",
		"services.homevisit.name":        "Hausbesuche",
		"services.homevisit.description": "Versorgung immobiler Patientinnen und Patienten zu Hause.",

		// Team roles
		"team.role.physician":  "Fachärztin für Allgemeinmedizin",
		"team.role.assistant":  "Medizinische Fachangestellte",
		"team.role.management": "Praxismanagement",

		// FAQ
		"faq.appointment.question": "Wie vereinbare ich einen Termin?",
		"faq.appointment.answer":   "Nutzen Sie unser Kontaktformular oder rufen Sie uns während der Öffnungszeiten an.",
		"faq.insurance.question": "Welche Versicherungen werden akzeptiert?",
		"faq.insurance.answer":   "Wir behandeln gesetzlich und privat versicherte Patientinnen und Patienten.",
		"faq.prescription.question": "Wie bestelle ich ein Folgerezept?",
		"faq.prescription.answer":   "Folgerezepte können Sie über das Kontaktformular mit dem Grund \"Rezeptbestellung\" anfordern.",
		"faq.emergency.question": "Was mache ich im Notfall?",
		"faq.emergency.answer":   "Bei lebensbedrohlichen Notfällen wählen Sie bitte sofort die 112.",

		// Opening hours
		"hours.weekdays": "Mo–Fr 08:00–12:00 Uhr",
		"hours.afternoon": "Mo, Di, Do 15:00–18:00 Uhr",
		"hours.closed":   "Mittwochnachmittag, Sa & So geschlossen",
	},
	LocaleEN: {
		"flash.contact.success": "Thank you! Your request has been submitted. We will get back to you as soon as possible.",
		"flash.contact.error":   "Unfortunately your request could not be processed. Please try again later.",

		"validation.full_name.required":          "Please enter your name.",
		"validation.email.required":              "Please enter your email address.",
		"validation.email.invalid":               "Please enter a valid email address.",
		"validation.contact_reason_id.required":  "Please select a contact reason.",
		"validation.contact_reason_id.invalid":   "The selected contact reason is invalid.",
		"validation.phone.too_long":              "The phone number must not exceed 50 characters.",
		"validation.preferred_datetime.invalid":  "Please enter a valid preferred date.",
		"validation.preferred_datetime.not_future": "The preferred date must be in the future.",
		"validation.message.too_long":            "Your message must not exceed 1000 characters.",

		"form.label.full_name":          "Name",
		"form.label.email":              "Email address",
		"form.label.contact_reason_id":  "Contact reason",
		"form.label.phone":              "Phone number (optional)",
		"form.label.preferred_datetime": "Preferred date (optional)",
		"form.label.message":            "Your message (optional)",
		"form.submit":                   "Send request",

		"mail.subject":            "New request via the contact form",
		"mail.heading":            "New contact request",
		"mail.label.name":         "Name",
		"mail.label.email":        "Email",
		"mail.label.reason":       "Contact reason",
		"mail.label.phone":        "Phone",
		"mail.label.preferred_at": "Preferred date",
		"mail.label.message":      "Message",
		"mail.footer":             "This message was sent automatically via the practice website contact form.",

		"nav.home":      "Home",
		"nav.services":  "Services",
		"nav.team":      "Team",
		"nav.faq":       "FAQ",
		"nav.contact":   "Contact",
		"nav.imprint":   "Imprint",
		"nav.privacy":   "Privacy",
		"nav.terms":     "Terms",
		"page.home.title":     "Welcome to our practice",
		"page.services.title": "Our services",
		"page.team.title":     "Our team",
		"page.faq.title":      "Frequently asked questions",
		"page.contact.title":  "Contact & appointment request",
		"page.imprint.title":  "Imprint",
		"page.privacy.title":  "Privacy policy",
		"page.terms.title":    "Terms and conditions",

		"reason.termin":       "Appointment request",
		"reason.rezept":       "Prescription refill",
		"reason.ueberweisung": "Referral",
		"reason.frage":        "General question",
		"reason.beschwerde":   "Complaint",
		"reason.notfall":      "Emergency",
		"reason.sonstiges":    "Other",

		"services.general.name":        "General medicine",
		"services.general.description": "Primary medical care for the whole family.",
		"services.prevention.name":        "Preventive check-ups",
		"services.prevention.description": "Health check-ups and early detection screenings.",
		"services.vaccination.name":        "Vaccinations",
		"services.vaccination.description": "All recommended standard and travel vaccinations.",
		"services.diagnostics.name":        "Laboratory diagnostics",
		"services.diagnostics.description": "Blood samples and laboratory tests directly on site.",
		"services.homevisit.name":        "Home visits",
		"services.homevisit.description": "Care for immobile patients at home.",

		"team.role.physician":  "Specialist in general medicine",
		"team.role.assistant":  "Medical assistant",
		"team.role.management": "Practice management",

		"faq.appointment.question": "How do I make an appointment?",
		"faq.appointment.answer":   "Use our contact form or call us during opening hours.",
		"faq.insurance.question": "Which insurances are accepted?",
		"faq.insurance.answer":   "We treat both statutorily and privately insured patients.",
		"faq.prescription.question": "How do I order a repeat prescription?",
		"faq.prescription.answer":   "Request repeat prescriptions via the contact form with the reason \"Prescription refill\".",
		"faq.emergency.question": "What do I do in an emergency?",
		"faq.emergency.answer":   "In life-threatening emergencies please call 112 immediately.",

		"hours.weekdays":  "Mon–Fri 8:00 am–12:00 pm",
		"hours.afternoon": "Mon, Tue, Thu 3:00 pm–6:00 pm",
		"hours.closed":    "Closed Wednesday afternoon, Sat & Sun",
	},
}
