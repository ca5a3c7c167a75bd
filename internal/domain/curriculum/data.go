package curriculum

// DefaultCatalog returns the built-in HSC curriculum: eight subjects with
// their chapters and topics, in display order.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Subject{
		{
			ID:   "phys1",
			Name: "Physics 1st",
			Chapters: []Chapter{
				{Name: "Ch1: Physical World", Topics: []string{
					"T-01: Dimensional Analysis", "T-02: Measurement Errors", "T-03: Instruments", "T-04: Unit Conversion",
				}},
				{Name: "Ch2: Vectors", Topics: []string{
					"T-01: Vector Types", "T-02: Resultant", "T-03: Resolution", "T-04: River Problems",
					"T-05: Subtraction", "T-06: Multiple Vectors", "T-07: Dot Product", "T-08: Direction Cosines",
					"T-09: Cross Product", "T-10: Vector Calculus",
				}},
				{Name: "Ch3: Kinematics", Topics: []string{
					"T-01: Equations of Motion", "T-02: Vertical Motion", "T-03: Projectile", "T-04: Circular Motion",
				}},
				{Name: "Ch4: Mechanics", Topics: []string{
					"T-01: Newton's Laws", "T-02: Forces", "T-03: Impulse", "T-04: Momentum", "T-05: Lift",
					"T-06: Moment of Inertia", "T-07: Torque", "T-08: Angular Momentum", "T-09: Angular Kinetics",
					"T-10: Centripetal Force", "T-11: Banking",
				}},
				{Name: "Ch5: Work & Energy", Topics: []string{
					"T-01: Work Done", "T-02: Spring Force", "T-03: PE & KE", "T-04: Work-Energy Theorem", "T-05: Power",
					"T-06: Well Problems",
				}},
				{Name: "Ch6: Gravitation", Topics: []string{
					"T-01: Newton's Law", "T-02: Gravity", "T-03: Gravitational Field", "T-04: Kepler's Laws",
					"T-05: Escape Velocity", "T-06: Satellites",
				}},
				{Name: "Ch7: Matter Properties", Topics: []string{
					"T-01: Young's Modulus", "T-02: Rigidity", "T-03: Bulk Modulus", "T-04: Poisson's Ratio",
					"T-05: Thermal Stress", "T-06: Energy", "T-07: Viscosity", "T-08: Surface Tension",
					"T-09: Surface Energy", "T-10: Capillarity", "T-11: Pressure",
				}},
				{Name: "Ch8: Periodic Motion", Topics: []string{
					"T-01: SHM Differential", "T-02: SHM", "T-03: Pendulum", "T-04: Energy in SHM", "T-05: Springs",
				}},
				{Name: "Ch9: Waves", Topics: []string{
					"T-01: Wave Quantities", "T-02: Progressive Waves", "T-03: Beats & Sound", "T-04: Strings",
				}},
				{Name: "Ch10: Ideal Gas", Topics: []string{
					"T-01: Gas Laws", "T-02: Ideal Gas Equation", "T-03: RMS Speed", "T-04: Kinetic Theory",
					"T-05: Mean Free Path", "T-06: Humidity",
				}},
			},
		},
		{
			ID:   "phys2",
			Name: "Physics 2nd",
			Chapters: []Chapter{
				{Name: "Ch1: Thermodynamics", Topics: []string{
					"T-01: Zeroth Law", "T-02: First Law", "T-03: Energy Conversion", "T-04: Processes",
					"T-05: Specific Heat", "T-06: Second Law", "T-07: Refrigerators", "T-08: Entropy",
				}},
				{Name: "Ch2: Electrostatics", Topics: []string{
					"T-01: Coulomb's Law", "T-02: Electric Field", "T-03: Potential", "T-04: Dipole", "T-05: Capacitors",
					"T-06: Capacitance", "T-07: Energy",
				}},
				{Name: "Ch3: Current", Topics: []string{
					"T-01: Resistance", "T-02: Ohm's Law", "T-03: Cells", "T-04: Kirchhoff's Laws",
					"T-05: Wheatstone Bridge", "T-06: Meter Bridge", "T-07: Instruments", "T-08: Joule's Law",
					"T-09: Power",
				}},
				{Name: "Ch4: Magnetism", Topics: []string{
					"T-01: Charged Particles", "T-02: Magnetic Field", "T-03: Force on Conductor", "T-04: Torque",
					"T-05: Induction",
				}},
				{Name: "Ch5: EM Induction", Topics: []string{
					"T-01: Faraday's Law", "T-02: Induction Types", "T-03: AC", "T-04: Transformers",
				}},
				{Name: "Ch6: Optics", Topics: []string{
					"T-01: Reflection & Refraction", "T-02: Prisms", "T-03: Lenses", "T-04: Lens Power", "T-05: Microscope",
					"T-06: Compound Microscope", "T-07: Telescope",
				}},
				{Name: "Ch7: Physical Optics", Topics: []string{
					"T-01: Interference", "T-02: Diffraction", "T-03: Polarization", "T-04: Poynting Vector",
				}},
				{Name: "Ch8: Modern Physics", Topics: []string{
					"T-01: Relativity Length", "T-02: Relativity Time", "T-03: Mass-Energy", "T-04: Photons",
					"T-05: X-rays", "T-06: Photoelectric", "T-07: De Broglie", "T-08: Lorentz", "T-09: Compton Effect",
				}},
				{Name: "Ch9: Nuclear", Topics: []string{
					"T-01: Hydrogen Atom", "T-02: Transitions", "T-03: Half-life", "T-04: Binding Energy",
					"T-05: Fission & Fusion",
				}},
				{Name: "Ch10: Electronics", Topics: []string{
					"T-01: Semiconductors", "T-02: Transistors", "T-03: Number Systems", "T-04: Logic Gates",
				}},
				{Name: "Ch11: Astronomy", Topics: []string{
					"T-01: Universe Creation", "T-02: Components",
				}},
			},
		},
		{
			ID:   "chem1",
			Name: "Chemistry 1st",
			Chapters: []Chapter{
				{Name: "Ch1: Lab Safety", Topics: []string{
					"T-01: Safety Rules", "T-02: Concentration", "T-03: Heating", "T-04: Storage",
				}},
				{Name: "Ch2: Qualitative", Topics: []string{
					"T-01: Atoms & Isotopes", "T-02: Atomic Models", "T-03: Quantum Numbers", "T-04: Spectroscopy",
					"T-05: Solubility", "T-06: Precipitation", "T-07: Ion ID", "T-08: Chromatography",
				}},
				{Name: "Ch3: Periodic Table", Topics: []string{
					"T-01: Block Elements", "T-02: Periodic Properties 1", "T-03: Periodic Properties 2",
					"T-04: Covalent Bonding", "T-05: Oxides", "T-06: Complex Compounds", "T-07: Hybridization",
					"T-08: Polarization", "T-09: H-bonding",
				}},
				{Name: "Ch4: Chemical Change", Topics: []string{
					"T-01: Reaction Rate", "T-02: Le Chatelier", "T-03: Equilibrium", "T-04: pH", "T-05: Buffers",
					"T-06: Thermochemistry",
				}},
				{Name: "Ch5: Working Chemistry", Topics: []string{
					"T-01: Preservatives", "T-02: Vinegar", "T-03: Canning", "T-04: Solutions", "T-05: Toiletries",
				}},
			},
		},
		{
			ID:   "chem2",
			Name: "Chemistry 2nd",
			Chapters: []Chapter{
				{Name: "Ch1: Environmental", Topics: []string{
					"T-01: Gas Laws", "T-02: Partial Pressure", "T-03: Diffusion", "T-04: Kinetic Theory",
					"T-05: Real Gases", "T-06: Water Purity", "T-07: Atmosphere",
				}},
				{Name: "Ch2: Organic", Topics: []string{
					"T-01: Classification", "T-02: Isomerism", "T-03: Hydrocarbons", "T-04: Alkyl Halides",
					"T-05: Alcohols", "T-06: Aldehydes", "T-07: Organic Acids", "T-08: Amines", "T-10: Electrophilic",
					"T-11: Polymers",
				}},
				{Name: "Ch3: Quantitative", Topics: []string{
					"T-01: Calculations", "T-02: Concentration", "T-03: Titration", "T-04: Redox Balance",
					"T-05: Redox Titration", "T-06: Iodometry", "T-07: Purity", "T-08: Beer-Lambert",
				}},
				{Name: "Ch4: Electrochemistry", Topics: []string{
					"T-01: Conductivity", "T-02: Faraday's Laws", "T-03: Cells", "T-04: Potential", "T-05: Nernst",
					"T-06: Batteries",
				}},
				{Name: "Ch5: Economic", Topics: []string{
					"T-01: Coal Resources", "T-02: Pollutants", "T-03: Nano Technology",
				}},
			},
		},
		{
			ID:   "math1",
			Name: "Math 1st",
			Chapters: []Chapter{
				{Name: "Ch1: Matrices", Topics: []string{
					"T-01: Types", "T-02: Addition", "T-03: Trace", "T-04: Multiplication", "T-05: Equality",
					"T-06: Minors", "T-07: Inverse", "T-08: Identity", "T-09: Unknowns", "T-10: Linear Equations",
				}},
				{Name: "Ch2: Vectors", Topics: []string{
					"T-01: Types", "T-02: Dot Product", "T-03: Angle", "T-04: Projection", "T-05: Cross Product",
					"T-06: Unit Vectors", "T-07: Collinearity",
				}},
				{Name: "Ch3: Lines", Topics: []string{
					"T-01: Coordinates", "T-02: Distance", "T-03: Division", "T-04: Area", "T-05: Displacement",
					"T-06: Slopes", "T-07: Equations", "T-08: Parallel Lines", "T-09: Point Distance",
					"T-10: Line Distance", "T-11: Centroid", "T-12: Angle", "T-13: Bisectors", "T-14: Reflection",
					"T-15: Misc",
				}},
				{Name: "Ch4: Circles", Topics: []string{
					"T-01: Center & Radius", "T-02: Conditions", "T-03: Polar Form", "T-04: Through Points",
					"T-05: Intercepts", "T-06: Diameter", "T-07: Three Points", "T-08: Center on Line",
					"T-09: Intersection", "T-10: Tangents", "T-11: Tangent Equations", "T-12: Touching Axes",
					"T-13: External Tangents", "T-14: Relative Position", "T-15: Radical Axis", "T-16: Chord Midpoint",
					"T-17: Circumscribe",
				}},
				{Name: "Ch5: Permutations", Topics: []string{
					"T-01: Pr & Cr", "T-02: Permutations", "T-03: Words", "T-04: Selection", "T-05: Combinations",
					"T-06: Committees", "T-07: Word Formation", "T-08: Geometry",
				}},
				{Name: "Ch6: Trig Ratios", Topics: []string{
					"T-01: Angles & Arc", "T-02: Conversions", "T-03: Domain & Range", "T-04: Periodic",
				}},
				{Name: "Ch7: Trig Angles", Topics: []string{
					"T-01: Associated Angles", "T-02: Series", "T-03: Compound", "T-04: Multiple", "T-05: Sub-multiple",
					"T-06: Identities", "T-07: Triangle Parts", "T-08: Conditions", "T-09: Triangle Nature",
				}},
				{Name: "Ch8: Functions", Topics: []string{
					"T-01: Value", "T-02: One-to-one", "T-03: Inverse", "T-04: Domain & Range", "T-05: Composite",
					"T-06: Graphs",
				}},
				{Name: "Ch9: Differentiation", Topics: []string{
					"T-01: Continuity", "T-02: Limits", "T-03: Conjugate", "T-04: Special Limits", "T-05: Trig Limits",
					"T-06: Exponential", "T-07: Infinity Limits", "T-08: Exponential Form", "T-09: First Principles",
					"T-10: Simplification", "T-11: Chain Rule", "T-12: Product Rule", "T-13: Inverse Trig",
					"T-14: Logarithms", "T-15: Implicit", "T-16: Successive", "T-17: Tangents", "T-18: Increasing",
					"T-19: Maxima", "T-20: Applications",
				}},
				{Name: "Ch10: Integration", Topics: []string{
					"T-01: Basic", "T-02: ax+b", "T-03: Substitution", "T-04: f'/f", "T-05: Exponential",
					"T-06: Trig Products", "T-07: Rational", "T-08: sin^m cos^n", "T-09: Quadratic", "T-10: Combinations",
					"T-11: Radicals", "T-12: By Parts", "T-13: e^x forms", "T-14: Partial Fractions", "T-15: Definite",
					"T-16: Area", "T-17: Misc",
				}},
			},
		},
		{
			ID:   "math2",
			Name: "Math 2nd",
			Chapters: []Chapter{
				{Name: "Ch1: Real Numbers", Topics: []string{
					"T-01: Properties", "T-02: Absolute Value Inequalities", "T-03: Solving Absolute Value",
					"T-04: Absolute Value Proofs", "T-05: Completeness Property", "T-06: Single Variable Inequalities",
					"T-07: Two Variable Inequalities",
				}},
				{Name: "Ch2: Linear Programming", Topics: []string{
					"T-01: Formation & Importance", "T-02: Bounded Solution Regions", "T-03: Unbounded Solution Regions",
				}},
				{Name: "Ch3: Complex Numbers", Topics: []string{
					"T-01: A+iB & Polar Forms", "T-02: Modulus & Argument", "T-03: Conjugate", "T-04: Finding Roots",
					"T-05: Powers of i", "T-06: Cube Roots of Unity", "T-07: Value & Proofs", "T-08: Graphs & Geometry",
				}},
				{Name: "Ch4: Polynomials", Topics: []string{
					"T-01: Identifying Polynomials", "T-02: Discriminant & Nature", "T-03: Roots & Coefficients",
					"T-04: Root Relations", "T-05: Finding Roots", "T-06: Formation of Equations",
					"T-07: Symmetric Expressions", "T-08: Roots in Different Sets", "T-09: Common Roots",
				}},
				{Name: "Ch5: Binomial Expansion", Topics: []string{
					"T-01: Pascal's Triangle", "T-02: Binomial Theorem", "T-03: General Term", "T-04: Independent Terms",
					"T-05: Middle Term", "T-06: Ratio of Coefficients", "T-07: Equality of Coefficients",
					"T-08: Infinite Series", "T-09: Convergence", "T-10: Sum of Coefficients",
				}},
				{Name: "Ch6: Conics", Topics: []string{
					"T-01: Identifying Conics", "T-02: Parabola Elements", "T-03: Parabola Equations",
					"T-04: Focal Distance", "T-05: Ellipse Elements", "T-06: Ellipse Equations", "T-07: Hyperbola Elements",
					"T-08: Hyperbola Equations", "T-09: SP + S'P = 2a", "T-10: Asymptotes", "T-11: Parametric Equations",
					"T-12: Focus & Directrix", "T-13: Tangents & Normals",
				}},
				{Name: "Ch7: Inverse Trig", Topics: []string{
					"T-01: Graph Problems", "T-02: Value Problems", "T-03: Inverse Proofs", "T-04: General Solutions",
					"T-05: Square Roots", "T-06: Quadratic Terms", "T-07: a\u00b7cos + b\u00b7sin = c",
					"T-08: Additive Form", "T-09: Multiplicative Form", "T-10: cot, tan, sec, csc",
				}},
				{Name: "Ch8: Statics", Topics: []string{
					"T-01: Parallelogram Law", "T-02: Sine Rule", "T-03: Resultant Direction", "T-04: Components Theorem",
					"T-05: Composition & Resolution", "T-06: Concurrent Forces Angles", "T-07: Lami's Theorem",
					"T-08: Three Forces Equilibrium", "T-09: Like Parallel Forces", "T-10: Triangle of Forces",
					"T-11: Unlike Parallel Forces", "T-12: Pressure & Reaction",
				}},
				{Name: "Ch9: Motion in Plane", Topics: []string{
					"T-01: Parallelogram of Velocities", "T-02: River Crossing", "T-03: Uniform Motion",
					"T-04: Catching Problems", "T-05: Distance in nth Second", "T-06: Train Collision",
					"T-07: Penetration Distance", "T-08: Relative Velocity", "T-09: Free Fall", "T-10: Well Depth",
					"T-11: Vertical Throw Time", "T-12: Max Height & Time", "T-13: Dropping from Balloon",
					"T-14: Two Objects Different Heights", "T-15: Projectile at Angle \u03b1", "T-16: Time, Height, Range",
					"T-17: Projectile Over Wall", "T-18: Projectile from Height h", "T-19: Angles \u03b1 & 90\u00b0-\u03b1",
					"T-20: Grass Problems",
				}},
				{Name: "Ch10: Dispersion & Probability", Topics: []string{
					"T-01: Dispersion & Range", "T-02: Mean Deviation", "T-03: Variance & Standard Deviation",
					"T-04: Quartile Deviation", "T-05: General Probability", "T-06: Probability Trees",
					"T-07: Multiplication Theorem", "T-08: Permutations & Combinations",
				}},
			},
		},
		{
			ID:   "bio1",
			Name: "Biology 1st",
			Chapters: []Chapter{
				{Name: "Ch1: Cell", Topics: []string{
					"T-01: Cell Structure", "T-02: Membrane", "T-03: Ribosome", "T-04: Organelles", "T-05: Mitochondria",
					"T-06: Plastid", "T-07: Centriole", "T-08: Nucle nucleus", "T-09: Nucleic Acid", "T-10: Replication",
					"T-11: Transcription", "T-12: Genetic Code",
				}},
				{Name: "Ch2: Division", Topics: []string{
					"T-01: Introduction", "T-02: Cell Cycle", "T-03: Mitosis", "T-04: Meiosis", "T-05: Crossing Over",
				}},
				{Name: "Ch3: Chemistry", Topics: []string{
					"T-01: Carbohydrates", "T-02: Polysaccharides", "T-03: Amino Acids", "T-04: Proteins", "T-05: Lipids",
					"T-06: Enzymes",
				}},
				{Name: "Ch4: Microorganisms", Topics: []string{
					"T-01: Virus", "T-02: Virus Importance", "T-03: Viral Diseases", "T-04: Bacteria",
					"T-05: Bacteria Importance", "T-06: Plasmodium",
				}},
				{Name: "Ch5: Algae", Topics: []string{
					"T-01: Algae", "T-02: Ulothrix", "T-03: Fungi", "T-04: Agaricus", "T-05: Diseases", "T-06: Lichen",
				}},
				{Name: "Ch6: Plants", Topics: []string{
					"T-01: Bryophyta", "T-02: Pteridophyta",
				}},
				{Name: "Ch7: Seed Plants", Topics: []string{
					"T-01: Gymnosperms", "T-02: Cycas", "T-03: Angiosperms", "T-04: Poaceae", "T-05: Malvaceae",
				}},
				{Name: "Ch8: Tissue", Topics: []string{
					"T-01: Meristematic", "T-02: Permanent", "T-03: Tissue System", "T-04: Vascular",
					"T-05: Internal Structure",
				}},
				{Name: "Ch9: Physiology", Topics: []string{
					"T-01: Mineral Absorption", "T-02: Transpiration", "T-03: Photosynthesis", "T-04: Respiration",
				}},
				{Name: "Ch10: Reproduction", Topics: []string{
					"T-01: Sexual", "T-02: Asexual",
				}},
				{Name: "Ch11: Biotechnology", Topics: []string{
					"T-01: Introduction", "T-02: Tissue Culture", "T-03: Genetic Engineering", "T-04: Applications",
					"T-05: Gene Cloning",
				}},
				{Name: "Ch12: Environment", Topics: []string{
					"T-01: Adaptation", "T-02: Conservation",
				}},
			},
		},
		{
			ID:   "bio2",
			Name: "Biology 2nd",
			Chapters: []Chapter{
				{Name: "Ch1: Diversity", Topics: []string{
					"T-01: Classification", "T-02: Major Phyla", "T-03: Chordata", "T-04: Nomenclature",
				}},
				{Name: "Ch2: Identity", Topics: []string{
					"T-01: Hydra Structure", "T-02: Hydra Locomotion", "T-03: Hydra Reproduction",
					"T-04: Grasshopper Morphology", "T-05: Digestive", "T-06: Circulatory", "T-07: Respiratory",
					"T-08: Excretory", "T-09: Sense Organs", "T-10: Reproduction", "T-11: Fish Identity",
					"T-12: Fish Circulation", "T-13: Fish Respiration", "T-14: Fish Reproduction",
				}},
				{Name: "Ch3: Digestion", Topics: []string{
					"T-01: Canal", "T-02: Glands", "T-03: Liver", "T-04: Pancreas", "T-05: Gastric", "T-06: Process",
					"T-07: Absorption", "T-08: Nervous System", "T-09: Characteristics", "T-10: Obesity",
				}},
				{Name: "Ch4: Blood", Topics: []string{
					"T-01: Blood", "T-02: Corpuscles", "T-03: Coagulation", "T-04: Heart", "T-05: Cardiac Cycle",
					"T-06: Blood Pressure", "T-07: Circulation", "T-08: Diseases", "T-09: Treatment",
				}},
				{Name: "Ch5: Respiration", Topics: []string{
					"T-01: System", "T-02: Physiology", "T-03: Gas Transport", "T-04: Problems",
				}},
				{Name: "Ch6: Excretion", Topics: []string{
					"T-01: Kidney", "T-02: Physiology", "T-03: Failure",
				}},
				{Name: "Ch7: Locomotion", Topics: []string{
					"T-01: Skeleton", "T-02: Axial", "T-03: Appendicular", "T-04: Bone", "T-05: Muscle", "T-06: Injuries",
				}},
				{Name: "Ch8: Coordination", Topics: []string{
					"T-01: Nervous System", "T-02: Brain", "T-03: Eye", "T-04: Ear", "T-05: Hormones",
				}},
				{Name: "Ch9: Reproduction", Topics: []string{
					"T-01: System", "T-02: Gametogenesis", "T-03: Development", "T-04: Family Planning",
				}},
				{Name: "Ch10: Defense", Topics: []string{
					"T-01: 1st & 2nd Defense", "T-02: 3rd Defense", "T-03: Antibodies",
				}},
				{Name: "Ch11: Genetics", Topics: []string{
					"T-01: Principles", "T-02: Mendel's Laws", "T-03: Sex-linked", "T-04: Blood Groups", "T-05: Evolution",
				}},
				{Name: "Ch12: Behavior", Topics: []string{
					"T-01: Innate", "T-02: Learned", "T-03: Social",
				}},
			},
		},
	})
}
