package export

import "html/template"

type pageData struct {
	Title   string
	Content template.HTML
	Updated string
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="th">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <link href="https://fonts.googleapis.com/css2?family=Sarabun:wght@300;400;500;700&display=swap" rel="stylesheet">
    <style>
        :root {
            --primary-color: #2c3e50;
            --accent-color: #c0392b;
            --text-color: #333;
            --bg-color: #f8f9fa;
            --paper-color: #ffffff;
        }
        body {
            font-family: 'Sarabun', sans-serif;
            line-height: 1.8;
            color: var(--text-color);
            background-color: var(--bg-color);
            margin: 0;
            padding: 40px 20px;
        }
        .container {
            max-width: 210mm;
            margin: 0 auto;
            background-color: var(--paper-color);
            padding: 25mm;
            box-shadow: 0 4px 6px rgba(0,0,0,0.05);
            border-radius: 4px;
        }
        h1 {
            color: var(--primary-color);
            font-size: 24pt;
            text-align: center;
            margin-bottom: 2em;
            border-bottom: 2px solid var(--primary-color);
            padding-bottom: 15px;
        }
        h2 {
            color: var(--primary-color);
            font-size: 18pt;
            margin-top: 1.5em;
            border-left: 5px solid var(--primary-color);
            padding-left: 10px;
        }
        h3 { font-size: 16pt; margin-top: 1.2em; }
        p { margin-bottom: 1em; text-align: justify; }
        ul, ol { margin-bottom: 1em; padding-left: 40px; }
        li { margin-bottom: 0.5em; }
        blockquote {
            background-color: #f1f8ff;
            border-left: 5px solid #0366d6;
            margin: 1.5em 0;
            padding: 15px 20px;
            font-style: italic;
            color: #555;
        }
        a { color: var(--accent-color); text-decoration: none; }
        a:hover { color: #a93226; text-decoration: underline; }
        hr { border: 0; height: 1px; background: #e0e0e0; margin: 3em 0; }
        code {
            background-color: #f6f8fa;
            padding: 0.2em 0.4em;
            border-radius: 3px;
            font-family: monospace;
            font-size: 0.9em;
        }
        table { border-collapse: collapse; margin: 1em 0; }
        th, td { border: 1px solid #ddd; padding: 6px 12px; }
        .footer {
            margin-top: 50px;
            text-align: center;
            font-size: 0.9em;
            color: #777;
            border-top: 1px solid #ddd;
            padding-top: 20px;
        }
        @media print {
            body { background: none; padding: 0; }
            .container { box-shadow: none; margin: 0; padding: 0; width: 100%; max-width: 100%; }
            a { text-decoration: none; color: black; }
        }
    </style>
</head>
<body>
    <div class="container">
        {{.Content}}
        <div class="footer">
            <p>ปรับปรุงล่าสุด (Last updated): {{.Updated}}</p>
        </div>
    </div>
</body>
</html>
`))
