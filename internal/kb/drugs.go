package kb

// drugGeneRules maps normalized drug name -> governing gene and phenotype
// rule table. Every table carries an NM entry; phenotypes without an entry
// of their own resolve to it via RuleFor.
var drugGeneRules = map[string]DrugGeneRule{
	"codeine": {
		Drug: "Codeine",
		Gene: "CYP2D6",
		Rules: map[string]RiskRule{
			"PM": {
				Risk:           RiskIneffective,
				Severity:       SeverityHigh,
				Confidence:     0.95,
				Recommendation: "Avoid codeine. CYP2D6 poor metabolizers cannot convert codeine to morphine and will get little or no analgesia.",
				DosageAdvice:   "Do not prescribe; no dose of codeine is reliably effective.",
				Alternatives:   []string{"Morphine", "Hydromorphone", "Non-opioid analgesia"},
				Mechanism:      "Codeine is a prodrug requiring CYP2D6-mediated O-demethylation to morphine; absent enzyme activity leaves the prodrug unconverted.",
			},
			"IM": {
				Risk:           RiskAdjustDosage,
				Severity:       SeverityModerate,
				Confidence:     0.85,
				Recommendation: "Use codeine with caution; analgesia may be reduced. Monitor pain response and escalate to an alternative if inadequate.",
				DosageAdvice:   "Start at standard dose; reassess analgesic effect within 24-48 hours.",
				Alternatives:   []string{"Morphine", "Non-opioid analgesia"},
				Mechanism:      "Reduced CYP2D6 activity lowers morphine formation, blunting the analgesic effect of standard codeine doses.",
			},
			"NM": {
				Risk:           RiskSafe,
				Severity:       SeverityLow,
				Confidence:     0.92,
				Recommendation: "Use codeine at standard labeled dosing.",
				DosageAdvice:   "Standard age- and weight-appropriate dosing.",
				Mechanism:      "Normal CYP2D6 activity converts codeine to morphine at the expected rate.",
			},
			"RM": {
				Risk:           RiskAdjustDosage,
				Severity:       SeverityModerate,
				Confidence:     0.75,
				Recommendation: "Use codeine with caution; morphine formation may be elevated. Watch for early opioid adverse effects.",
				DosageAdvice:   "Consider starting at the lower end of the dosing range.",
				Alternatives:   []string{"Morphine"},
				Mechanism:      "Above-normal CYP2D6 activity increases the rate of morphine formation from codeine.",
			},
			"URM": {
				Risk:           RiskToxic,
				Severity:       SeverityCritical,
				Confidence:     0.93,
				Recommendation: "Avoid codeine. Ultrarapid metabolizers form morphine rapidly and are at risk of life-threatening respiratory depression.",
				DosageAdvice:   "Do not prescribe at any dose.",
				Alternatives:   []string{"Morphine (titrated)", "Non-opioid analgesia"},
				Mechanism:      "Duplicated or increased-function CYP2D6 alleles cause rapid, excessive conversion of codeine to morphine.",
			},
		},
	},
	"tramadol": {
		Drug: "Tramadol",
		Gene: "CYP2D6",
		Rules: map[string]RiskRule{
			"PM": {
				Risk:           RiskIneffective,
				Severity:       SeverityHigh,
				Confidence:     0.88,
				Recommendation: "Avoid tramadol; the active O-desmethyl metabolite will not form in sufficient quantity.",
				DosageAdvice:   "Do not prescribe; select a non-CYP2D6-dependent analgesic.",
				Alternatives:   []string{"Morphine", "Non-opioid analgesia"},
				Mechanism:      "Tramadol analgesia depends on CYP2D6-mediated formation of O-desmethyltramadol, which has much higher mu-opioid affinity.",
			},
			"IM": {
				Risk:           RiskAdjustDosage,
				Severity:       SeverityModerate,
				Confidence:     0.8,
				Recommendation: "Use tramadol with caution; monitor for inadequate analgesia.",
				DosageAdvice:   "Standard starting dose; titrate to effect with early reassessment.",
				Alternatives:   []string{"Morphine"},
				Mechanism:      "Reduced CYP2D6 activity lowers active metabolite formation.",
			},
			"NM": {
				Risk:           RiskSafe,
				Severity:       SeverityLow,
				Confidence:     0.9,
				Recommendation: "Use tramadol at standard labeled dosing.",
				DosageAdvice:   "Standard dosing.",
				Mechanism:      "Normal CYP2D6 activity produces the active metabolite at the expected rate.",
			},
			"URM": {
				Risk:           RiskToxic,
				Severity:       SeverityHigh,
				Confidence:     0.86,
				Recommendation: "Avoid tramadol; rapid active-metabolite formation risks opioid toxicity.",
				DosageAdvice:   "Do not prescribe at standard doses.",
				Alternatives:   []string{"Morphine (titrated)", "Non-opioid analgesia"},
				Mechanism:      "Increased CYP2D6 activity accelerates O-desmethyltramadol formation beyond the intended exposure.",
			},
		},
	},
	"clopidogrel": {
		Drug: "Clopidogrel",
		Gene: "CYP2C19",
		Rules: map[string]RiskRule{
			"PM": {
				Risk:           RiskIneffective,
				Severity:       SeverityHigh,
				Confidence:     0.94,
				Recommendation: "Avoid clopidogrel. Poor metabolizers form too little active metabolite for adequate platelet inhibition, raising thrombotic risk.",
				DosageAdvice:   "Dose escalation does not reliably overcome the activation defect.",
				Alternatives:   []string{"Prasugrel", "Ticagrelor"},
				Mechanism:      "Clopidogrel is a prodrug requiring two sequential CYP2C19-dependent oxidation steps; loss-of-function alleles block formation of the active thiol metabolite.",
			},
			"IM": {
				Risk:           RiskAdjustDosage,
				Severity:       SeverityModerate,
				Confidence:     0.87,
				Recommendation: "Consider an alternative antiplatelet agent; intermediate metabolizers have reduced active-metabolite exposure and higher event rates.",
				DosageAdvice:   "If clopidogrel must be used, standard dosing with platelet-function monitoring.",
				Alternatives:   []string{"Prasugrel", "Ticagrelor"},
				Mechanism:      "One loss-of-function CYP2C19 allele halves active metabolite formation.",
			},
			"NM": {
				Risk:           RiskSafe,
				Severity:       SeverityLow,
				Confidence:     0.9,
				Recommendation: "Use clopidogrel at standard labeled dosing.",
				DosageAdvice:   "Standard loading and maintenance dosing.",
				Mechanism:      "Normal CYP2C19 activity generates expected active-metabolite exposure.",
			},
			"RM": {
				Risk:           RiskSafe,
				Severity:       SeverityLow,
				Confidence:     0.82,
				Recommendation: "Use clopidogrel at standard dosing; antiplatelet response is expected to be adequate.",
				DosageAdvice:   "Standard dosing.",
				Mechanism:      "Increased CYP2C19 activity modestly raises active-metabolite exposure without established harm.",
			},
			"URM": {
				Risk:           RiskSafe,
				Severity:       SeverityLow,
				Confidence:     0.8,
				Recommendation: "Use clopidogrel at standard dosing; be alert for bleeding with concomitant anticoagulants.",
				DosageAdvice:   "Standard dosing.",
				Mechanism:      "Markedly increased activation may raise bleeding tendency in combination therapy.",
			},
		},
	},
	"voriconazole": {
		Drug: "Voriconazole",
		Gene: "CYP2C19",
		Rules: map[string]RiskRule{
			"PM": {
				Risk:           RiskToxic,
				Severity:       SeverityHigh,
				Confidence:     0.9,
				Recommendation: "Choose an alternative azole. Poor metabolizers accumulate voriconazole with risk of hepatotoxicity and neurotoxicity.",
				DosageAdvice:   "If voriconazole is required, reduce dose and use therapeutic drug monitoring.",
				Alternatives:   []string{"Isavuconazole", "Liposomal amphotericin B"},
				Mechanism:      "Voriconazole is cleared predominantly by CYP2C19; absent activity produces supratherapeutic trough concentrations.",
			},
			"IM": {
				Risk:           RiskAdjustDosage,
				Severity:       SeverityModerate,
				Confidence:     0.82,
				Recommendation: "Use standard dosing with early therapeutic drug monitoring.",
				DosageAdvice:   "Standard dosing; check trough concentration at steady state.",
				Mechanism:      "Reduced clearance elevates voriconazole exposure moderately.",
			},
			"NM": {
				Risk:           RiskSafe,
				Severity:       SeverityLow,
				Confidence:     0.88,
				Recommendation: "Use voriconazole at standard labeled dosing.",
				DosageAdvice:   "Standard dosing.",
				Mechanism:      "Normal CYP2C19 activity keeps voriconazole exposure in the therapeutic window.",
			},
			"RM": {
				Risk:           RiskAdjustDosage,
				Severity:       SeverityModerate,
				Confidence:     0.8,
				Recommendation: "Monitor for subtherapeutic exposure; rapid metabolizers may not reach target trough concentrations.",
				DosageAdvice:   "Standard dosing with early trough measurement; increase if subtherapeutic.",
				Alternatives:   []string{"Isavuconazole"},
				Mechanism:      "Increased CYP2C19 clearance lowers voriconazole exposure.",
			},
			"URM": {
				Risk:           RiskIneffective,
				Severity:       SeverityHigh,
				Confidence:     0.85,
				Recommendation: "Choose an alternative agent; ultrarapid metabolizers frequently fail to achieve therapeutic voriconazole concentrations.",
				DosageAdvice:   "Avoid; dose escalation is unreliable.",
				Alternatives:   []string{"Isavuconazole", "Liposomal amphotericin B"},
				Mechanism:      "Markedly increased CYP2C19 clearance keeps voriconazole subtherapeutic at standard doses.",
			},
		},
	},
	"warfarin": {
		Drug: "Warfarin",
		Gene: "CYP2C9",
		Rules: map[string]RiskRule{
			"PM": {
				Risk:           RiskAdjustDosage,
				Severity:       SeverityHigh,
				Confidence:     0.91,
				Recommendation: "Substantially reduce the warfarin starting dose and extend INR monitoring; poor metabolizers are at high bleeding risk on standard doses.",
				DosageAdvice:   "Reduce starting dose by 50-80% of standard; titrate by INR.",
				Alternatives:   []string{"Apixaban", "Rivaroxaban"},
				Mechanism:      "S-warfarin, the more potent enantiomer, is cleared by CYP2C9; deficient activity prolongs its half-life and anticoagulant effect.",
			},
			"IM": {
				Risk:           RiskAdjustDosage,
				Severity:       SeverityModerate,
				Confidence:     0.88,
				Recommendation: "Reduce the warfarin starting dose and monitor INR more frequently during initiation.",
				DosageAdvice:   "Reduce starting dose by 20-40% of standard.",
				Mechanism:      "Reduced CYP2C9 activity slows S-warfarin clearance, increasing sensitivity to standard doses.",
			},
			"NM": {
				Risk:           RiskSafe,
				Severity:       SeverityLow,
				Confidence:     0.9,
				Recommendation: "Initiate warfarin per standard clinical dosing algorithms.",
				DosageAdvice:   "Standard algorithm-guided dosing with routine INR monitoring.",
				Mechanism:      "Normal CYP2C9 activity clears S-warfarin at the expected rate.",
			},
		},
	},
	"simvastatin": {
		Drug: "Simvastatin",
		Gene: "SLCO1B1",
		Rules: map[string]RiskRule{
			"PM": {
				Risk:           RiskToxic,
				Severity:       SeverityHigh,
				Confidence:     0.89,
				Recommendation: "Avoid simvastatin; markedly reduced hepatic uptake raises plasma statin exposure and myopathy risk.",
				DosageAdvice:   "Prescribe an alternative statin at low starting dose.",
				Alternatives:   []string{"Rosuvastatin", "Pravastatin"},
				Mechanism:      "Loss of OATP1B1 transport function traps simvastatin acid in the circulation, exposing skeletal muscle to elevated drug levels.",
			},
			"IM": {
				Risk:           RiskAdjustDosage,
				Severity:       SeverityModerate,
				Confidence:     0.84,
				Recommendation: "Limit simvastatin dose and counsel on myopathy symptoms, or choose an alternative statin.",
				DosageAdvice:   "Do not exceed 20 mg daily.",
				Alternatives:   []string{"Rosuvastatin", "Pravastatin"},
				Mechanism:      "Partially reduced OATP1B1 transport raises simvastatin exposure dose-dependently.",
			},
			"NM": {
				Risk:           RiskSafe,
				Severity:       SeverityLow,
				Confidence:     0.87,
				Recommendation: "Use simvastatin at standard labeled dosing.",
				DosageAdvice:   "Standard dosing up to 40 mg daily.",
				Mechanism:      "Normal OATP1B1 transport keeps simvastatin exposure in the expected range.",
			},
		},
	},
	"azathioprine": {
		Drug: "Azathioprine",
		Gene: "TPMT",
		Rules: map[string]RiskRule{
			"PM": {
				Risk:           RiskToxic,
				Severity:       SeverityCritical,
				Confidence:     0.95,
				Recommendation: "Avoid azathioprine or reduce the dose drastically with specialist oversight; TPMT-deficient patients develop life-threatening myelosuppression on standard doses.",
				DosageAdvice:   "If unavoidable, reduce to 10% of standard dose given thrice weekly, with weekly blood counts.",
				Alternatives:   []string{"Mycophenolate", "Methotrexate"},
				Mechanism:      "Without TPMT-mediated inactivation, azathioprine is shunted toward cytotoxic thioguanine nucleotides that accumulate in marrow.",
			},
			"IM": {
				Risk:           RiskAdjustDosage,
				Severity:       SeverityHigh,
				Confidence:     0.9,
				Recommendation: "Start azathioprine at a reduced dose and monitor blood counts closely during titration.",
				DosageAdvice:   "Start at 30-70% of standard dose; adjust by tolerance and counts.",
				Mechanism:      "Heterozygous TPMT deficiency raises thioguanine nucleotide levels roughly two-fold at standard doses.",
			},
			"NM": {
				Risk:           RiskSafe,
				Severity:       SeverityLow,
				Confidence:     0.92,
				Recommendation: "Use azathioprine at standard labeled dosing with routine monitoring.",
				DosageAdvice:   "Standard weight-based dosing.",
				Mechanism:      "Normal TPMT activity maintains the intended balance of active and inactivated metabolites.",
			},
			"URM": {
				Risk:           RiskAdjustDosage,
				Severity:       SeverityModerate,
				Confidence:     0.7,
				Recommendation: "Standard dosing may underdose; monitor disease activity and consider metabolite-guided escalation.",
				DosageAdvice:   "Standard starting dose; escalate guided by thiopurine metabolite levels.",
				Mechanism:      "Very high TPMT activity diverts drug away from active thioguanine nucleotides.",
			},
		},
	},
	"mercaptopurine": {
		Drug: "Mercaptopurine",
		Gene: "TPMT",
		Rules: map[string]RiskRule{
			"PM": {
				Risk:           RiskToxic,
				Severity:       SeverityCritical,
				Confidence:     0.94,
				Recommendation: "Reduce mercaptopurine drastically; TPMT-deficient patients suffer severe, prolonged myelosuppression on standard doses.",
				DosageAdvice:   "Reduce to 10% of standard dose given thrice weekly, with weekly blood counts.",
				Alternatives:   []string{"Protocol-specific alternatives per oncology guidance"},
				Mechanism:      "Deficient TPMT inactivation shunts mercaptopurine toward cytotoxic thioguanine nucleotides.",
			},
			"IM": {
				Risk:           RiskAdjustDosage,
				Severity:       SeverityHigh,
				Confidence:     0.89,
				Recommendation: "Start at a reduced dose with close hematologic monitoring.",
				DosageAdvice:   "Start at 30-70% of protocol dose; titrate by counts.",
				Mechanism:      "Intermediate TPMT activity elevates active metabolite exposure at standard doses.",
			},
			"NM": {
				Risk:           RiskSafe,
				Severity:       SeverityLow,
				Confidence:     0.91,
				Recommendation: "Use mercaptopurine at protocol dosing with routine monitoring.",
				DosageAdvice:   "Standard protocol dosing.",
				Mechanism:      "Normal TPMT activity yields expected metabolite exposure.",
			},
		},
	},
	"fluorouracil": {
		Drug: "Fluorouracil",
		Gene: "DPYD",
		Rules: map[string]RiskRule{
			"PM": {
				Risk:           RiskToxic,
				Severity:       SeverityCritical,
				Confidence:     0.96,
				Recommendation: "Avoid fluorouracil. Complete DPD deficiency causes life-threatening mucositis, neutropenia, and neurotoxicity at standard doses.",
				DosageAdvice:   "Do not administer; select a non-fluoropyrimidine regimen.",
				Alternatives:   []string{"Non-fluoropyrimidine chemotherapy per oncology guidance"},
				Mechanism:      "DPD catabolizes over 80% of administered fluorouracil; deficiency causes massive accumulation of active metabolites.",
			},
			"IM": {
				Risk:           RiskAdjustDosage,
				Severity:       SeverityHigh,
				Confidence:     0.9,
				Recommendation: "Reduce the fluorouracil starting dose and titrate by toxicity; partial DPD deficiency substantially raises exposure.",
				DosageAdvice:   "Reduce starting dose by 50%; escalate cautiously if tolerated.",
				Mechanism:      "Partial DPD deficiency halves fluorouracil catabolism, roughly doubling exposure.",
			},
			"NM": {
				Risk:           RiskSafe,
				Severity:       SeverityLow,
				Confidence:     0.93,
				Recommendation: "Use fluorouracil at protocol dosing.",
				DosageAdvice:   "Standard protocol dosing.",
				Mechanism:      "Normal DPD activity clears fluorouracil at the expected rate.",
			},
		},
	},
	"capecitabine": {
		Drug: "Capecitabine",
		Gene: "DPYD",
		Rules: map[string]RiskRule{
			"PM": {
				Risk:           RiskToxic,
				Severity:       SeverityCritical,
				Confidence:     0.95,
				Recommendation: "Avoid capecitabine; it is metabolized to fluorouracil and carries the same fatal-toxicity risk in complete DPD deficiency.",
				DosageAdvice:   "Do not administer.",
				Alternatives:   []string{"Non-fluoropyrimidine chemotherapy per oncology guidance"},
				Mechanism:      "Capecitabine is a fluorouracil prodrug; DPD deficiency blocks catabolism of the resulting fluorouracil.",
			},
			"IM": {
				Risk:           RiskAdjustDosage,
				Severity:       SeverityHigh,
				Confidence:     0.88,
				Recommendation: "Reduce the capecitabine starting dose; partial DPD deficiency raises fluorouracil exposure.",
				DosageAdvice:   "Reduce starting dose by 50%; escalate cautiously if tolerated.",
				Mechanism:      "Partial DPD deficiency slows catabolism of capecitabine-derived fluorouracil.",
			},
			"NM": {
				Risk:           RiskSafe,
				Severity:       SeverityLow,
				Confidence:     0.9,
				Recommendation: "Use capecitabine at protocol dosing.",
				DosageAdvice:   "Standard protocol dosing.",
				Mechanism:      "Normal DPD activity clears capecitabine-derived fluorouracil at the expected rate.",
			},
		},
	},
}

// monitoringPlans maps normalized drug name -> risk category -> monitoring
// plan. MonitoringPlan falls back to the drug's Safe-category plan when no
// category-specific entry exists.
var monitoringPlans = map[string]map[string]string{
	"codeine": {
		RiskSafe:         "Routine pain reassessment; no genotype-directed monitoring required.",
		RiskIneffective:  "Reassess analgesia within 24 hours; escalate to an alternative opioid on inadequate response.",
		RiskToxic:        "If codeine exposure has occurred, observe for sedation and respiratory depression for at least 24 hours.",
		RiskAdjustDosage: "Reassess analgesic response and adverse effects at each dose change.",
	},
	"tramadol": {
		RiskSafe:        "Routine pain reassessment.",
		RiskIneffective: "Reassess analgesia within 24 hours; switch agents on inadequate response.",
		RiskToxic:       "Observe for sedation, nausea, and respiratory depression after any exposure.",
	},
	"clopidogrel": {
		RiskSafe:         "Routine cardiology follow-up.",
		RiskIneffective:  "Consider platelet-function testing if clopidogrel is continued; monitor for ischemic events.",
		RiskAdjustDosage: "Platelet-function testing at steady state; monitor for stent thrombosis symptoms.",
	},
	"voriconazole": {
		RiskSafe:         "Trough concentration once at steady state for invasive infections.",
		RiskToxic:        "Trough concentration within the first week; liver function tests twice weekly initially.",
		RiskAdjustDosage: "Trough concentration within the first week; adjust dose to 1-5.5 mg/L range.",
		RiskIneffective:  "Early trough concentration; switch agents if target exposure is not achievable.",
	},
	"warfarin": {
		RiskSafe:         "INR at baseline, then per standard initiation schedule.",
		RiskAdjustDosage: "INR every 2-3 days during initiation until stable, then weekly before spacing out.",
	},
	"simvastatin": {
		RiskSafe:         "Baseline lipid panel; creatine kinase only if muscle symptoms develop.",
		RiskToxic:        "Baseline creatine kinase; prompt evaluation of any muscle pain or weakness.",
		RiskAdjustDosage: "Counsel on myopathy symptoms; creatine kinase on any muscle complaint.",
	},
	"azathioprine": {
		RiskSafe:         "Complete blood count every 2 weeks for the first month, then monthly.",
		RiskToxic:        "Weekly complete blood count for at least 8 weeks; hold drug on significant cytopenia.",
		RiskAdjustDosage: "Complete blood count weekly during titration, then every 2-4 weeks.",
	},
	"mercaptopurine": {
		RiskSafe:         "Complete blood count per protocol schedule.",
		RiskToxic:        "Weekly complete blood count; thiopurine metabolite levels after dose changes.",
		RiskAdjustDosage: "Complete blood count weekly during titration; metabolite-guided adjustment.",
	},
	"fluorouracil": {
		RiskSafe:         "Standard cycle-day toxicity review.",
		RiskToxic:        "Do not administer; if exposure occurred, admit for aggressive supportive care and consider uridine triacetate.",
		RiskAdjustDosage: "Enhanced toxicity review each cycle; blood counts before every cycle.",
	},
	"capecitabine": {
		RiskSafe:         "Standard cycle-day toxicity review.",
		RiskToxic:        "Do not administer; if exposure occurred, manage as fluoropyrimidine overdose.",
		RiskAdjustDosage: "Enhanced toxicity review each cycle; blood counts before every cycle.",
	},
}

// evidenceTiers maps normalized drug name -> CPIC-style guideline evidence
// level for the drug-gene pair.
var evidenceTiers = map[string]string{
	"codeine":        "CPIC Level A",
	"tramadol":       "CPIC Level A",
	"clopidogrel":    "CPIC Level A",
	"voriconazole":   "CPIC Level A",
	"warfarin":       "CPIC Level A",
	"simvastatin":    "CPIC Level A",
	"azathioprine":   "CPIC Level A",
	"mercaptopurine": "CPIC Level A",
	"fluorouracil":   "CPIC Level A",
	"capecitabine":   "CPIC Level A",
}
