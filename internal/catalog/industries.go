package catalog

import "lumipath/internal/domain"

// IndustryProfiles son los sectores contra los que se rankea el perfil.
// Cada RequiredRatio suma 100. Los campos descriptivos alimentan al narrador.
var IndustryProfiles = []domain.IndustryProfile{
	{
		Industry:       "IT y tecnología",
		Description:    "Crear valor nuevo apoyándose en tecnología. Pesan el pensamiento lógico y la iniciativa.",
		RequiredRatio:  domain.Ratio{C: 25, L: 30, T: 45},
		ExampleRoles:   []string{"Ingeniero de software", "Product manager", "Analista de datos", "Project manager", "Diseñador UX"},
		Skills:         []string{"Programación", "Diseño de sistemas", "Análisis de datos", "Gestión de proyectos", "Entendimiento del usuario", "Validación de hipótesis"},
		Qualifications: []string{"Certificación AWS", "Scrum Master", "Certificado de analítica de datos"},
	},
	{
		Industry:       "Industria y manufactura",
		Description:    "Aportar valor a través de la fabricación. Pesan el control de calidad y la mejora continua.",
		RequiredRatio:  domain.Ratio{C: 30, L: 40, T: 30},
		ExampleRoles:   []string{"Gestión de producción", "Control de calidad", "Ingeniero de desarrollo", "Ventas técnicas", "Compras"},
		Skills:         []string{"Control de calidad", "Gestión de producción", "Propuestas de mejora", "Gestión de equipos", "Control de costos"},
		Qualifications: []string{"Six Sigma", "Certificación en calidad", "Inglés técnico"},
	},
	{
		Industry:       "Consultoría",
		Description:    "Analizar los problemas de una empresa y proponer estrategias. Pesan la lógica y la capacidad de propuesta.",
		RequiredRatio:  domain.Ratio{C: 35, L: 35, T: 30},
		ExampleRoles:   []string{"Consultor", "Planificación estratégica", "Planeamiento corporativo", "Mejora de procesos", "PMO"},
		Skills:         []string{"Análisis de problemas", "Diseño de estrategia", "Análisis de datos", "Presentaciones", "Gestión de stakeholders"},
		Qualifications: []string{"MBA", "Certificado en estadística", "Inglés de negocios"},
	},
	{
		Industry:       "Educación",
		Description:    "Formar personas y transmitir conocimiento. Pesa sobre todo la comunicación.",
		RequiredRatio:  domain.Ratio{C: 50, L: 30, T: 20},
		ExampleRoles:   []string{"Docente", "Capacitador", "Diseño instruccional", "Desarrollo de contenidos", "Apoyo escolar"},
		Skills:         []string{"Capacidad de explicar", "Diseño de aprendizaje", "Comunicación", "Armado de currícula", "Diseño de evaluaciones"},
		Qualifications: []string{"Título docente", "Certificación en coaching educativo"},
	},
	{
		Industry:       "Salud",
		Description:    "Cuidar la salud de las personas. Pesan el conocimiento especializado y el trato humano.",
		RequiredRatio:  domain.Ratio{C: 45, L: 25, T: 30},
		ExampleRoles:   []string{"Médico", "Enfermero", "Farmacéutico", "Administración sanitaria", "Gestión de salud"},
		Skills:         []string{"Conocimiento clínico", "Atención al paciente", "Trabajo en equipo", "Gestión de registros", "Comunicación"},
		Qualifications: []string{"Matrícula profesional", "Certificado en administración de salud"},
	},
	{
		Industry:       "Retail y servicios",
		Description:    "Acercar productos y servicios al cliente. Pesan el entendimiento del cliente y el trato directo.",
		RequiredRatio:  domain.Ratio{C: 50, L: 30, T: 20},
		ExampleRoles:   []string{"Gestión de tiendas", "E-commerce", "Comprador", "Planificación de producto", "Diseño de servicios"},
		Skills:         []string{"Atención al cliente", "Gestión de inventario", "Análisis de datos", "Planificación de producto", "Merchandising"},
		Qualifications: []string{"Certificado en ventas", "Certificado en e-commerce"},
	},
	{
		Industry:       "Finanzas",
		Description:    "Administrar el flujo de capital que sostiene la economía. Pesan los números y la construcción de confianza.",
		RequiredRatio:  domain.Ratio{C: 35, L: 30, T: 35},
		ExampleRoles:   []string{"Banca", "Analista financiero", "Asesor financiero", "Contabilidad", "Gestión de riesgo"},
		Skills:         []string{"Análisis financiero", "Gestión de riesgo", "Atención a clientes", "Análisis de datos", "Marco regulatorio"},
		Qualifications: []string{"CFA", "Contador público", "Certificado en riesgo"},
	},
	{
		Industry:       "Inmobiliaria y construcción",
		Description:    "Proveer los espacios donde vivimos y trabajamos. Pesan la negociación y el conocimiento técnico.",
		RequiredRatio:  domain.Ratio{C: 40, L: 35, T: 25},
		ExampleRoles:   []string{"Ventas inmobiliarias", "Arquitecto", "Jefe de obra", "Desarrollo inmobiliario", "Project manager"},
		Skills:         []string{"Atención al cliente", "Negociación", "Marco regulatorio", "Gestión de proyectos", "Control de costos"},
		Qualifications: []string{"Matrícula de corredor", "Título de arquitecto", "Certificado de dirección de obra"},
	},
	{
		Industry:       "Logística y distribución",
		Description:    "Gestionar el movimiento de mercadería en toda la cadena. Pesan la eficiencia y la capacidad de gestión.",
		RequiredRatio:  domain.Ratio{C: 30, L: 40, T: 30},
		ExampleRoles:   []string{"Gestión logística", "Planificación de transporte", "Gestión de depósito", "Planeamiento SCM"},
		Skills:         []string{"Gestión de inventario", "Planificación de rutas", "Control de costos", "Operación de sistemas", "Mejora continua"},
		Qualifications: []string{"Certificado en logística", "Certificado SCM"},
	},
	{
		Industry:       "Sector público",
		Description:    "Prestar servicios públicos y sostener la infraestructura social. Pesan la imparcialidad y la coordinación.",
		RequiredRatio:  domain.Ratio{C: 40, L: 35, T: 25},
		ExampleRoles:   []string{"Empleado público", "Diseño de políticas", "Desarrollo territorial", "Coordinación institucional"},
		Skills:         []string{"Marco normativo", "Coordinación", "Redacción de documentos", "Análisis de datos", "Diseño de políticas"},
		Qualifications: []string{"Concurso público", "Certificado en gestión pública"},
	},
	{
		Industry:       "Medios y contenidos",
		Description:    "Producir y difundir contenidos que informan y emocionan. Pesan la creatividad y la comunicación.",
		RequiredRatio:  domain.Ratio{C: 45, L: 25, T: 30},
		ExampleRoles:   []string{"Producción de contenidos", "Edición", "Productor", "Director", "Marketing"},
		Skills:         []string{"Producción de contenidos", "Ideación", "Edición", "Gestión de proyectos", "Marketing"},
		Qualifications: []string{"Certificado en producción audiovisual", "Certificado en diseño web"},
	},
	{
		Industry:       "Energía",
		Description:    "Proveer y administrar la energía que mueve a la sociedad. Pesan la técnica y la seguridad.",
		RequiredRatio:  domain.Ratio{C: 30, L: 35, T: 35},
		ExampleRoles:   []string{"Ingeniero", "Gestión de planta", "Seguridad industrial", "Mantenimiento", "Project manager"},
		Skills:         []string{"Conocimiento técnico", "Gestión de seguridad", "Mantenimiento", "Gestión de proyectos", "Análisis de datos"},
		Qualifications: []string{"Ingeniería", "Certificado en seguridad industrial"},
	},
	{
		Industry:       "Infraestructura",
		Description:    "Construir y operar la infraestructura que sostiene la vida diaria. Pesan la técnica y la seguridad.",
		RequiredRatio:  domain.Ratio{C: 30, L: 35, T: 35},
		ExampleRoles:   []string{"Ingeniero", "Project manager", "Mantenimiento", "Seguridad", "Planeamiento"},
		Skills:         []string{"Conocimiento técnico", "Gestión de seguridad", "Mantenimiento", "Gestión de proyectos", "Análisis de datos"},
		Qualifications: []string{"Ingeniería", "Certificado en gestión de infraestructura"},
	},
	{
		Industry:       "Startups",
		Description:    "Crear valor nuevo y crecer rápido. Pesan la iniciativa y la flexibilidad.",
		RequiredRatio:  domain.Ratio{C: 35, L: 40, T: 25},
		ExampleRoles:   []string{"Fundador", "Product manager", "Marketer", "Ingeniero", "Ventas"},
		Skills:         []string{"Ideación", "Gestión de proyectos", "Marketing", "Análisis de datos", "Comunicación", "Flexibilidad"},
		Qualifications: []string{"Certificado en estadística", "Inglés de negocios"},
	},
}
