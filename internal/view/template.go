package view

import "html/template"

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Dolar Hoy</title>
</head>
<body>
<nav><span>Dolar Hoy</span></nav>
<ul class="rates">
{{- range $e := .}}
<li class="rate">
<h1>{{.Label}}</h1>
<div class="cell"><h2>Compra</h2><p>${{.Buy}}</p></div>
<div class="cell"><h2>Venta</h2><p>${{.Sell}}</p></div>
<div class="cell">
<div class="variation">{{with .Marker.Symbol}}<span class="marker marker-{{$e.Marker}}">{{.}}</span>{{end}}<h2>{{.Variation}}</h2></div>
<p>{{.Date}}</p>
</div>
</li>
{{- end}}
</ul>
<footer><span>Valores tomados de&nbsp;</span><a href="https://www.ambito.com/">ambito.com</a></footer>
</body>
</html>
`))
