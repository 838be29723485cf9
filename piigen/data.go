package piigen

// Value pools for the Chilean locale. Names are stored uppercase, the
// way they appear in scanned business documents.

var firstNames = []string{
	"AGUSTÍN", "ALEJANDRO", "ALONSO", "ÁLVARO", "ANDRÉS", "BENJAMÍN",
	"CAMILO", "CARLOS", "CRISTÓBAL", "CRISTIAN", "DANIEL", "DAVID",
	"DIEGO", "EDUARDO", "ELÍAS", "EMILIANO", "ENRIQUE", "ESTEBAN",
	"FEDERICO", "FERNANDO", "FRANCISCO", "GABRIEL", "GASPAR", "GERMÁN",
	"GUSTAVO", "HERNÁN", "IGNACIO", "IVÁN", "JOAQUÍN", "JORGE", "JUAN",
	"JULIÁN", "LEONARDO", "LORENZO", "LUIS", "MARCELO", "MARTÍN",
	"MATÍAS", "MATEO", "MAURICIO", "MAXIMILIANO", "MIGUEL", "NICOLÁS",
	"PATRICIO", "PEDRO", "RAFAEL", "RICARDO", "ROBERTO", "RODRIGO",
	"SAMUEL", "SANTIAGO", "SEBASTIÁN", "SIMÓN", "TOMÁS", "VICENTE",
	"VÍCTOR",
	"AGUSTINA", "ALEJANDRA", "AMANDA", "ANTONIA", "BELÉN", "BLANCA",
	"CAMILA", "CAROLINA", "CATALINA", "CLAUDIA", "CONSTANZA", "DANIELA",
	"ELISA", "EMILIA", "ESTEFANÍA", "FERNANDA", "FLORENCIA", "FRANCISCA",
	"GABRIELA", "ISABELLA", "JAVIERA", "JOSEFINA", "JULIETA", "KARINA",
	"LAURA", "LUCIANA", "MACARENA", "MAGDALENA", "MANUELA", "MARÍA",
	"MARTINA", "NATALIA", "NICOLE", "PALOMA", "PAULINA", "RENATA",
	"ROCÍO", "ROSARIO", "SARA", "SOFÍA", "TAMARA", "VALENTINA",
	"VALERIA", "VERÓNICA", "VICTORIA", "XIMENA",
}

var secondNames = []string{
	"CARLOS", "JOSÉ", "LUIS", "ANTONIO", "MANUEL", "FRANCISCO",
	"MIGUEL", "RAFAEL", "FERNANDO", "RICARDO", "ALBERTO", "EDUARDO",
	"ANDRÉS", "ROBERTO", "PEDRO", "DANIEL", "GABRIEL", "FELIPE",
	"IGNACIO", "ESTEBAN", "RODRIGO", "PATRICIO",
	"MARÍA", "ISABEL", "CRISTINA", "ELENA", "TERESA", "PATRICIA",
	"CARMEN", "ROSA", "ANA", "LAURA", "BEATRIZ", "PILAR", "MERCEDES",
	"SOLEDAD", "ROCÍO", "VICTORIA", "GLORIA", "PAZ",
}

var surnames = []string{
	"GONZÁLEZ", "MUÑOZ", "ROJAS", "DÍAZ", "PÉREZ", "SOTO", "CONTRERAS",
	"SILVA", "MARTÍNEZ", "SEPÚLVEDA", "MORALES", "RODRÍGUEZ", "LÓPEZ",
	"ARAYA", "FUENTES", "HERNÁNDEZ", "TORRES", "ESPINOZA", "FLORES",
	"CASTILLO", "REYES", "VALENZUELA", "VARGAS", "RAMÍREZ", "GUTIÉRREZ",
	"HERRERA", "ÁLVAREZ", "VÁSQUEZ", "TAPIA", "SÁNCHEZ", "FERNÁNDEZ",
	"CARRASCO", "CORTÉS", "GÓMEZ", "JARA", "VERGARA", "RIVERA", "NÚÑEZ",
	"BRAVO", "FIGUEROA", "RIQUELME", "MOLINA", "VERA", "SANDOVAL",
	"GARCÍA", "VEGA", "MIRANDA", "ROMERO", "ORTIZ", "SALAZAR", "CAMPOS",
	"ORELLANA", "GARRIDO", "PARRA", "GALLARDO", "SAAVEDRA", "AGUILERA",
	"PEÑA", "ZÚÑIGA", "RUIZ", "MEDINA", "GUZMÁN", "ESCOBAR", "NAVARRO",
	"PIZARRO", "GODOY", "CÁCERES", "HENRÍQUEZ", "ARAVENA", "MORENO",
	"LEIVA", "SALINAS", "VIDAL", "LAGOS", "VALDÉS", "RAMOS", "JIMÉNEZ",
	"YÁÑEZ", "BUSTOS", "ORTEGA", "PALMA", "CARVAJAL", "PINO",
}

var streets = []string{
	"Av. Libertador Bernardo O'Higgins", "Av. Apoquindo", "Av. Vitacura",
	"Av. Los Leones", "Av. Providencia", "Calle San Diego", "Calle Lira",
	"Calle Portugal", "Pasaje Los Álamos", "Pasaje El Roble",
	"Calle Merced", "Av. La Florida", "Calle Pío Nono", "Calle Suecia",
	"Calle Santa Isabel", "Av. Irarrázaval", "Av. Tobalaba",
	"Calle Huérfanos", "Av. Pedro de Valdivia", "Calle Ahumada",
	"Av. Manuel Montt", "Calle Bellavista", "Av. Vicuña Mackenna",
	"Calle Nueva de Lyon", "Av. Salvador", "Av. Kennedy",
	"Calle Las Flores", "Av. Américo Vespucio", "Calle Los Aromos",
}

var cities = []string{
	"Santiago", "Valparaíso", "Concepción", "La Serena", "Antofagasta",
	"Temuco", "Rancagua", "Talca", "Arica", "Iquique", "Puerto Montt",
	"Chillán", "Copiapó", "Osorno", "Quillota", "Viña del Mar",
	"San Antonio", "Melipilla", "Los Ángeles", "Curicó",
}

var organizations = []string{
	"Banco de Chile", "Banco Santander Chile", "BancoEstado",
	"Banco de Crédito e Inversiones", "Banco Security", "Banco Falabella",
	"Falabella", "Ripley", "Paris", "La Polar", "Easy",
	"Homecenter Sodimac", "Líder", "Jumbo", "Santa Isabel", "Unimarc",
	"Entel", "Movistar Chile", "Claro Chile", "WOM", "VTR",
	"Chilectra", "Metrogas", "Aguas Andinas", "CODELCO", "SQM",
	"Clínica Las Condes", "Clínica Alemana", "FONASA",
	"Universidad de Chile", "Pontificia Universidad Católica",
	"Servicio de Impuestos Internos", "Registro Civil",
}

var emailDomains = []string{
	"gmail.com", "hotmail.com", "yahoo.com", "outlook.com", "live.cl", "vtr.net",
}

// spanishMonths for the long date format, lowercase as written in
// Chilean correspondence.
var spanishMonths = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio",
	"agosto", "septiembre", "octubre", "noviembre", "diciembre",
}
