package catalog

import "lumipath/internal/domain"

// JobProfiles es el maestro de puestos con su exigencia C/L/T (suma 100).
// Sirve como segundo nivel de matching, más granular que el de sectores.
var JobProfiles = []domain.JobProfile{
	// Ventas y negocio
	{ID: "b2b-sales", Name: "Ventas corporativas (B2B)", Category: "Negocio", RequiredRatio: domain.Ratio{C: 50, L: 30, T: 20}, Description: "Detectar el problema del cliente y resolverlo con propuestas y relación de confianza."},
	{ID: "b2c-sales", Name: "Ventas a consumidor (B2C)", Category: "Negocio", RequiredRatio: domain.Ratio{C: 60, L: 30, T: 10}, Description: "Acompañar la emoción y la necesidad de cada persona con empatía y mucha acción."},
	{ID: "customer-success", Name: "Customer success", Category: "Negocio", RequiredRatio: domain.Ratio{C: 50, L: 30, T: 20}, Description: "Acompañar al cliente hacia su éxito, proponiendo mejoras basadas en datos."},
	{ID: "sales-manager", Name: "Gerente de ventas", Category: "Negocio", RequiredRatio: domain.Ratio{C: 30, L: 50, T: 20}, Description: "Conducir el equipo comercial, definiendo estrategia y gestionando la ejecución."},
	{ID: "biz-dev", Name: "Desarrollo de negocio", Category: "Negocio", RequiredRatio: domain.Ratio{C: 30, L: 40, T: 30}, Description: "Abrir nuevas líneas de negocio y alianzas que generen crecimiento."},
	// Planeamiento y marketing
	{ID: "marketing", Name: "Marketing", Category: "Planeamiento", RequiredRatio: domain.Ratio{C: 20, L: 30, T: 50}, Description: "Leer el mercado en los datos y diseñar campañas con estructura."},
	{ID: "corp-planning", Name: "Planeamiento corporativo", Category: "Planeamiento", RequiredRatio: domain.Ratio{C: 20, L: 30, T: 50}, Description: "Trazar el rumbo de la empresa con números y lógica."},
	{ID: "pmm", Name: "Product marketing", Category: "Planeamiento", RequiredRatio: domain.Ratio{C: 40, L: 20, T: 40}, Description: "Diseñar el posicionamiento y el mensaje del producto para impulsar su adopción."},
	{ID: "pr", Name: "Prensa y relaciones públicas", Category: "Planeamiento", RequiredRatio: domain.Ratio{C: 50, L: 30, T: 20}, Description: "Construir vínculo con medios y elevar la marca de la compañía."},
	// Administración
	{ID: "hr-recruiting", Name: "Recursos humanos (selección)", Category: "Administración", RequiredRatio: domain.Ratio{C: 50, L: 30, T: 20}, Description: "Atraer talento y lograr el encuentro justo entre empresa y candidato."},
	{ID: "hr-dev", Name: "Recursos humanos (desarrollo)", Category: "Administración", RequiredRatio: domain.Ratio{C: 50, L: 20, T: 30}, Description: "Diseñar cultura y procesos que hagan crecer a las personas y a la organización."},
	{ID: "finance", Name: "Contabilidad y finanzas", Category: "Administración", RequiredRatio: domain.Ratio{C: 15, L: 15, T: 70}, Description: "Custodiar los números de la empresa con procesamiento y análisis rigurosos."},
	{ID: "legal", Name: "Legales", Category: "Administración", RequiredRatio: domain.Ratio{C: 30, L: 20, T: 50}, Description: "Gestionar contratos y riesgos para respaldar la operación del negocio."},
	{ID: "general-affairs", Name: "Servicios generales", Category: "Administración", RequiredRatio: domain.Ratio{C: 50, L: 30, T: 20}, Description: "Sostener el funcionamiento interno: espacios, trámites y soporte a todos."},
	// IT y creatividad
	{ID: "pm", Name: "Project manager", Category: "IT", RequiredRatio: domain.Ratio{C: 40, L: 30, T: 30}, Description: "Coordinar a todas las partes y empujar para entregar en fecha."},
	{ID: "pdm", Name: "Product manager", Category: "IT", RequiredRatio: domain.Ratio{C: 30, L: 40, T: 30}, Description: "Balancear valor de usuario y objetivos de negocio para guiar el desarrollo."},
	{ID: "se", Name: "Ingeniero de sistemas", Category: "IT", RequiredRatio: domain.Ratio{C: 20, L: 20, T: 60}, Description: "Estructurar requerimientos complejos y bajarlos a una arquitectura realizable."},
	{ID: "frontend-engineer", Name: "Ingeniero frontend", Category: "IT", RequiredRatio: domain.Ratio{C: 30, L: 20, T: 50}, Description: "Construir las pantallas que tocan los usuarios uniendo técnica y diseño."},
	{ID: "data-scientist", Name: "Científico de datos", Category: "IT", RequiredRatio: domain.Ratio{C: 10, L: 20, T: 70}, Description: "Extraer hallazgos de datos masivos para sostener decisiones con evidencia."},
	{ID: "uiux-designer", Name: "Diseñador UI/UX", Category: "Creatividad", RequiredRatio: domain.Ratio{C: 30, L: 20, T: 50}, Description: "Diseñar experiencias e interfaces usables y atractivas."},
	// Profesiones y sector público
	{ID: "consultant", Name: "Consultor de negocio", Category: "Profesional", RequiredRatio: domain.Ratio{C: 30, L: 20, T: 50}, Description: "Estructurar el problema del cliente y presentar soluciones convincentes."},
	{ID: "civil-servant", Name: "Empleado municipal", Category: "Público", RequiredRatio: domain.Ratio{C: 50, L: 20, T: 30}, Description: "Atender al vecino y gestionar trámites que resuelven problemas locales."},
	{ID: "teacher", Name: "Docente", Category: "Educación", RequiredRatio: domain.Ratio{C: 50, L: 30, T: 20}, Description: "Transmitir conocimiento y acompañar el crecimiento de los estudiantes."},
	{ID: "nurse", Name: "Enfermero", Category: "Salud", RequiredRatio: domain.Ratio{C: 50, L: 20, T: 30}, Description: "Cuidar la recuperación del paciente y asistir el trabajo médico."},
	{ID: "construction-manager", Name: "Jefe de obra", Category: "Construcción", RequiredRatio: domain.Ratio{C: 30, L: 50, T: 20}, Description: "Gestionar plazos y seguridad de la obra hasta completarla según plan."},
}
