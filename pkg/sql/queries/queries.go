package queries

const USER_BY_USERNAME = `
	SELECT U.id, U.username, U.password, U.name, U.role
	FROM user U WHERE U.username = ?`

const CLIENTES = `
	SELECT C.id, C.nombre, C.nit, C.contacto, C.telefono, C.correo, C.direccion, C.creado
	FROM cliente C ORDER BY C.nombre`

const CLIENTE_DETAILS = `
	SELECT C.id, C.nombre, C.nit, C.contacto, C.telefono, C.correo, C.direccion, C.creado
	FROM cliente C WHERE C.id = ?`

const DEUDOR_DETAILS = `
	SELECT D.id, C.nombre AS cliente, D.nombre, D.cedula, D.telefono, D.correo, D.direccion, D.ciudad, D.tipificacion,
		EM.mes AS ultimo_mes, EM.deuda AS ultima_deuda, EM.recaudo AS ultimo_recaudo
	FROM deudor D
	LEFT JOIN cliente C ON C.id = D.cliente_id
	LEFT JOIN estado_mensual EM ON EM.deudor_id = D.id
		AND EM.mes = (SELECT MAX(EM2.mes) FROM estado_mensual EM2 WHERE EM2.deudor_id = D.id)
	WHERE D.id = ?`

const TIPIFICACION_HISTORY = `
	SELECT DT.id, DT.fecha, DT.tipificacion, U.name AS usuario
	FROM deudor_tipificacion DT
	LEFT JOIN user U ON U.id = DT.user_id
	WHERE DT.deudor_id = ?
	ORDER BY DT.fecha`

const LATEST_TIPIFICACION = `
	SELECT DT.tipificacion
	FROM deudor_tipificacion DT
	WHERE DT.deudor_id = ?
	ORDER BY DT.fecha DESC LIMIT 1`

const ESTADOS_MENSUALES = `
	SELECT EM.id, EM.mes, EM.deuda, EM.recaudo
	FROM estado_mensual EM
	WHERE EM.deudor_id = ?
	ORDER BY EM.mes`

const UPSERT_ESTADO_MENSUAL = `
	INSERT INTO estado_mensual (deudor_id, mes, deuda, recaudo)
	VALUES (?, ?, ?, ?)
	ON DUPLICATE KEY UPDATE deuda = VALUES(deuda), recaudo = VALUES(recaudo)`

const ACUERDO_DETAILS = `
	SELECT A.id, A.deudor_id, A.numero, A.version, A.fecha_acuerdo, A.capital_inicial, A.porcentaje_honorarios,
		A.honorarios_inicial, A.total_acordado, A.numero_cuotas, A.periodicidad, A.fecha_primera_cuota, A.estado, A.creado
	FROM acuerdo_pago A WHERE A.id = ?`

const ACUERDOS_BY_DEUDOR = `
	SELECT A.id, A.deudor_id, A.numero, A.version, A.fecha_acuerdo, A.capital_inicial, A.porcentaje_honorarios,
		A.honorarios_inicial, A.total_acordado, A.numero_cuotas, A.periodicidad, A.fecha_primera_cuota, A.estado, A.creado
	FROM acuerdo_pago A
	WHERE A.deudor_id = ?
	ORDER BY A.version DESC`

const ACUERDO_CUOTAS = `
	SELECT AC.numero, AC.fecha_pago, AC.valor_cuota, AC.capital_cuota, AC.honorarios_cuota,
		AC.capital_saldo_antes, AC.capital_saldo_despues, AC.honorarios_saldo_antes, AC.honorarios_saldo_despues
	FROM acuerdo_cuota AC
	WHERE AC.acuerdo_id = ?
	ORDER BY AC.numero`

const ACUERDO_SALDOS_INICIALES = `
	SELECT A.capital_inicial, A.honorarios_inicial
	FROM acuerdo_pago A WHERE A.id = ? FOR UPDATE`

const NEXT_ACUERDO_VERSION = `
	SELECT COALESCE(MAX(A.version), 0) + 1
	FROM acuerdo_pago A WHERE A.deudor_id = ?`

const SUPERSEDE_ACTIVE_ACUERDOS = `
	UPDATE acuerdo_pago SET estado = 'cancelado'
	WHERE deudor_id = ? AND estado = 'activo'`

const DELETE_ACUERDO_CUOTAS = `
	DELETE FROM acuerdo_cuota WHERE acuerdo_id = ?`

const SEGUIMIENTOS_BY_DEUDOR = `
	SELECT S.id, S.deudor_id, U.name AS usuario, S.fecha, S.canal, S.nota
	FROM seguimiento S
	LEFT JOIN user U ON U.id = S.user_id
	WHERE S.deudor_id = ?
	ORDER BY S.fecha DESC`

const DEMANDAS_BY_DEUDOR = `
	SELECT DM.id, DM.deudor_id, DM.juzgado, DM.radicado, DM.etapa, DM.fecha_presentacion, DM.notas, DM.creado
	FROM demanda DM
	WHERE DM.deudor_id = ?
	ORDER BY DM.fecha_presentacion DESC`

const NOTIFICACIONES_BY_DEUDOR = `
	SELECT N.id, N.deudor_id, U.name AS usuario, N.tipo, N.destino, N.mensaje, N.fecha
	FROM notificacion N
	LEFT JOIN user U ON U.id = N.user_id
	WHERE N.deudor_id = ?
	ORDER BY N.fecha DESC`

const DOCUMENTOS_BY_DEUDOR = `
	SELECT DD.id, DD.nombre, DD.s3bucket, DD.s3region, DD.source, DD.creado
	FROM deudor_documento DD
	WHERE DD.deudor_id = ?
	ORDER BY DD.creado DESC`

const DEUDOR_CONTACTO = `
	SELECT D.nombre, D.telefono FROM deudor D WHERE D.id = ?`

const AGG_DEUDORES = `
	SELECT D.id, D.tipificacion FROM deudor D`

const AGG_HISTORIAL = `
	SELECT DT.deudor_id, DT.fecha, DT.tipificacion
	FROM deudor_tipificacion DT
	ORDER BY DT.deudor_id, DT.fecha`

const AGG_ESTADOS = `
	SELECT EM.deudor_id, EM.mes, EM.deuda, EM.recaudo
	FROM estado_mensual EM
	ORDER BY EM.deudor_id, EM.mes`

const RECUPERACION_POR_MES = `
	SELECT EM.mes, COUNT(DISTINCT EM.deudor_id) AS deudores, COALESCE(SUM(EM.recaudo), 0) AS recaudado
	FROM estado_mensual EM
	WHERE EM.mes >= ? AND EM.mes <= ? AND EM.recaudo > 0
	GROUP BY EM.mes
	ORDER BY EM.mes`
